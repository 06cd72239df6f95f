package narration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/asmanlearning/asman/internal/lessons"
	"github.com/asmanlearning/asman/internal/logger"
)

// Synthesizer turns text into encoded audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error)
	Name() string
}

// Narrator is a Service that synthesizes audio and writes one MP3 file per
// narration into a directory.
type Narrator struct {
	synth  Synthesizer
	outDir string
	log    *logger.Logger

	mu     sync.Mutex
	jobs   map[Handle]*job
	active Handle
}

type job struct {
	cancel   context.CancelFunc
	done     chan struct{}
	path     string
	err      error
	finished bool
}

// NewNarrator creates a Narrator writing into outDir.
func NewNarrator(synth Synthesizer, outDir string, log *logger.Logger) *Narrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Narrator{
		synth:  synth,
		outDir: outDir,
		log:    log,
		jobs:   make(map[Handle]*job),
	}
}

func (n *Narrator) Speak(ctx context.Context, text string, voice Voice) (Handle, error) {
	text = lessons.StripVisualCues(text)
	if text == "" {
		return "", ErrNothingToSay
	}
	if err := os.MkdirAll(n.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create narration dir: %w", err)
	}

	h := Handle(uuid.NewString())
	ctx, cancel := context.WithCancel(ctx)
	j := &job{
		cancel: cancel,
		done:   make(chan struct{}),
		path:   filepath.Join(n.outDir, string(h)+".mp3"),
	}

	n.mu.Lock()
	if prev, ok := n.jobs[n.active]; ok {
		prev.cancel()
	}
	n.prune()
	n.jobs[h] = j
	n.active = h
	n.mu.Unlock()

	go n.run(ctx, h, j, text, voice)
	return h, nil
}

func (n *Narrator) run(ctx context.Context, h Handle, j *job, text string, voice Voice) {
	defer close(j.done)
	defer j.cancel()

	audio, err := n.synth.Synthesize(ctx, text, voice)
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = os.WriteFile(j.path, audio, 0o644)
	}

	n.mu.Lock()
	j.err = err
	j.finished = true
	if n.active == h {
		n.active = ""
	} else {
		// Superseded: only a Wait already holding the job can still see it.
		delete(n.jobs, h)
	}
	n.mu.Unlock()

	if errors.Is(err, context.Canceled) {
		n.log.Debug("narration cancelled", "handle", h)
		return
	}
	if err != nil {
		n.log.Warn("narration failed", "handle", h, "backend", n.synth.Name(), "error", err)
		return
	}
	n.log.Info("narration ready", "handle", h, "backend", n.synth.Name(), "path", j.path, "bytes", len(audio))
}

// prune drops finished jobs. The latest narration stays until the next
// Speak, so Wait and OutputPath work after it completes. Callers hold mu.
func (n *Narrator) prune() {
	for h, j := range n.jobs {
		if j.finished {
			delete(n.jobs, h)
		}
	}
}

func (n *Narrator) Cancel(h Handle) error {
	n.mu.Lock()
	j, ok := n.jobs[h]
	n.mu.Unlock()
	if !ok {
		return ErrUnknownHandle
	}
	j.cancel()
	return nil
}

func (n *Narrator) Wait(h Handle) error {
	n.mu.Lock()
	j, ok := n.jobs[h]
	n.mu.Unlock()
	if !ok {
		return ErrUnknownHandle
	}
	<-j.done

	n.mu.Lock()
	defer n.mu.Unlock()
	return j.err
}

// OutputPath returns the audio file a narration writes to.
func (n *Narrator) OutputPath(h Handle) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	j, ok := n.jobs[h]
	if !ok {
		return "", false
	}
	return j.path, true
}
