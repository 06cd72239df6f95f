package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/asmanlearning/asman/internal/app"
	"github.com/asmanlearning/asman/internal/config"
	"github.com/asmanlearning/asman/internal/lessons"
	"github.com/asmanlearning/asman/internal/llm"
	"github.com/asmanlearning/asman/internal/logger"
	"github.com/asmanlearning/asman/internal/narration"
	"github.com/asmanlearning/asman/internal/observability"
	"github.com/asmanlearning/asman/internal/screens/compose"
	"github.com/asmanlearning/asman/internal/session"
	"github.com/asmanlearning/asman/internal/store"
)

// newProvider builds the generative backend. Tests swap it for a mock.
var newProvider = llm.NewProvider

// appEnv is the wiring shared by one command invocation.
type appEnv struct {
	cfg      *config.Config
	log      *logger.Logger
	shutdown observability.ShutdownFunc
	dbFlag   string

	// backend is the model lessonService connected to, empty when offline.
	backend string
}

// setup loads configuration and starts logging and tracing. Callers must
// Close the result.
func setup(cmd *cobra.Command) (*appEnv, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	shutdown, err := observability.InitTracer(cfg.Trace.Enabled, cmd.ErrOrStderr(), "asman", version)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	dbFlag, _ := cmd.Flags().GetString("db")
	return &appEnv{cfg: cfg, log: log, shutdown: shutdown, dbFlag: dbFlag}, nil
}

func (e *appEnv) Close(ctx context.Context) {
	if err := e.shutdown(context.WithoutCancel(ctx)); err != nil {
		e.log.Warn("trace shutdown failed", "error", err)
	}
	e.log.Sync()
}

// lessonService wires the lesson pipeline. A backend that cannot be built
// is replaced by one that always fails, so every request gets a fallback
// pack instead of an error.
func (e *appEnv) lessonService(ctx context.Context, stderr io.Writer) *lessons.Service {
	provider, err := newProvider(ctx, e.cfg.LLM, e.log)
	if err != nil {
		e.log.Warn("llm provider not configured", "error", err)
		fmt.Fprintln(stderr, "LLM provider not configured:", err)
		fmt.Fprintln(stderr, "Offline lesson packs will be used.")
		return lessons.NewService(llm.NewUnconfiguredProvider(err), e.cfg.Lessons, e.log)
	}
	e.backend = provider.ModelID()
	return lessons.NewService(provider, e.cfg.Lessons, e.log)
}

// narrationService returns the configured text-to-speech service and a
// release func. The "none" backend records requests without speaking.
func (e *appEnv) narrationService(ctx context.Context) (narration.Service, func(), error) {
	if e.cfg.Narration.Backend != "google" {
		return narration.NewRecorder(), func() {}, nil
	}
	synth, err := narration.NewGoogleSynthesizer(ctx, e.cfg.Narration.Voice)
	if err != nil {
		return nil, nil, fmt.Errorf("google text-to-speech: %w", err)
	}
	release := func() {
		if err := synth.Close(); err != nil {
			e.log.Warn("close text-to-speech client", "error", err)
		}
	}
	return narration.NewNarrator(synth, e.cfg.Narration.OutputDir, e.log), release, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the store.path setting, then ASMAN_DB and the default XDG path.
func (e *appEnv) resolveDBPath() (string, error) {
	for _, p := range []string{e.dbFlag, e.cfg.Store.Path} {
		if p != "" {
			return p, store.EnsureDir(p)
		}
	}
	return store.DefaultDBPath()
}

// openSession opens the local store and loads the persisted session.
func (e *appEnv) openSession(ctx context.Context) (*session.Manager, func(), error) {
	dbPath, err := e.resolveDBPath()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	release := func() { _ = st.Close() }

	mgr := session.NewManager(st, e.log)
	if _, err := mgr.Load(ctx); err != nil {
		release()
		return nil, nil, err
	}
	return mgr, release, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close(ctx)

	opts, release := env.appOptions(ctx, cmd.ErrOrStderr(), env.lessonService(ctx, cmd.ErrOrStderr()))
	defer release()
	return app.Run(opts)
}

// appOptions gathers TUI dependencies. Narration and session problems are
// reported and degrade the app rather than stop it.
func (e *appEnv) appOptions(ctx context.Context, stderr io.Writer, gen compose.Generator) (app.Options, func()) {
	var releases []func()
	release := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	// A nil service shows "narration is turned off" in the pack viewer.
	var narr narration.Service
	if e.cfg.Narration.Backend == "google" {
		svc, closeNarr, err := e.narrationService(ctx)
		if err != nil {
			e.log.Warn("narration unavailable", "error", err)
			fmt.Fprintln(stderr, "Narration unavailable:", err)
		} else {
			narr = svc
			releases = append(releases, closeNarr)
		}
	}

	opts := app.Options{
		Deps: compose.Deps{
			Lessons:      gen,
			Narration:    narr,
			LanguageCode: e.cfg.Narration.LanguageCode,
		},
		Backend: e.backend,
	}

	mgr, closeStore, err := e.openSession(ctx)
	if err != nil {
		e.log.Warn("session unavailable", "error", err)
		return opts, release
	}
	releases = append(releases, closeStore)
	if u := mgr.Current(); u != nil {
		opts.User = u.DisplayName
	}
	return opts, release
}
