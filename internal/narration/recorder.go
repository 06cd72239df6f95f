package narration

import (
	"context"
	"fmt"
	"sync"

	"github.com/asmanlearning/asman/internal/lessons"
)

// Utterance is one recorded Speak call.
type Utterance struct {
	Handle    Handle
	Text      string
	Voice     Voice
	Cancelled bool
}

// Recorder is a Service that only records what it was asked to say. It
// backs the "none" narration backend and tests.
type Recorder struct {
	mu         sync.Mutex
	next       int
	Utterances []Utterance
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Speak(_ context.Context, text string, voice Voice) (Handle, error) {
	text = lessons.StripVisualCues(text)
	if text == "" {
		return "", ErrNothingToSay
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := Handle(fmt.Sprintf("rec-%d", r.next))
	r.Utterances = append(r.Utterances, Utterance{Handle: h, Text: text, Voice: voice})
	return h, nil
}

func (r *Recorder) Cancel(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Utterances {
		if r.Utterances[i].Handle == h {
			r.Utterances[i].Cancelled = true
			return nil
		}
	}
	return ErrUnknownHandle
}

func (r *Recorder) Wait(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Utterances {
		if u.Handle == h {
			return nil
		}
	}
	return ErrUnknownHandle
}

// Last returns the most recent utterance.
func (r *Recorder) Last() (Utterance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Utterances) == 0 {
		return Utterance{}, false
	}
	return r.Utterances[len(r.Utterances)-1], true
}
