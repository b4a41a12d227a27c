package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	historyrender "github.com/bnema/persona-relay/internal/adapters/render/history"
	"github.com/bnema/persona-relay/internal/adapters/repo/memory"
	sqliterepo "github.com/bnema/persona-relay/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/persona-relay/internal/adapters/repo/toml"
	chainstore "github.com/bnema/persona-relay/internal/adapters/secrets/chain"
	transcriptfile "github.com/bnema/persona-relay/internal/adapters/transcript/file"
	"github.com/bnema/persona-relay/internal/adapters/transport/openai"
	"github.com/bnema/persona-relay/internal/application"
	"github.com/bnema/persona-relay/internal/config"
	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
)

var errNoAPIKey = errors.New("no API key configured: run `persona auth set` or export PERSONA_API_KEY")

type app struct {
	cfg             config.Config
	logger          *slog.Logger
	stderr          io.Writer
	repo            ports.PersonalityRepository
	store           ports.ConversationStore
	secretStore     ports.SecretStore
	templater       application.PromptTemplater
	limiter         *application.RateLimiter
	service         *application.Service
	historyRenderer func(domain.Personality, []domain.Message, historyrender.RenderOptions) (string, error)
	httpClient      *http.Client
	clock           ports.Clock
	closers         []func() error
}

func wireApp() (*app, error) {
	v := config.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire personality repository: %w", err)
	}

	a := &app{
		cfg:             cfg,
		logger:          newLogger(io.Discard, slog.LevelWarn),
		stderr:          io.Discard,
		repo:            repo,
		templater:       application.NewPromptTemplater(cfg.Denial.Sentinel),
		limiter:         application.NewRateLimiter(cfg.Dispatch.RateLimit),
		historyRenderer: historyrender.Render,
		httpClient:      http.DefaultClient,
		clock:           ports.SystemClock{},
	}

	switch cfg.History.Backend {
	case config.BackendMemory:
		a.store = memory.NewConversationStore()
	case config.BackendSQLite:
		store, err := sqliterepo.NewConversationStore(v)
		if err != nil {
			return nil, fmt.Errorf("wire sqlite conversation store: %w", err)
		}
		a.store = store
		a.closers = append(a.closers, store.Close)
	default:
		store, err := tomlrepo.NewConversationStore(v)
		if err != nil {
			return nil, fmt.Errorf("wire toml conversation store: %w", err)
		}
		a.store = store
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.Dir)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("wire secret store chain: %w", err), a.close())
	}
	a.secretStore = secretStore

	a.service = application.NewService(a.repo, a.store, nil, a.templater)

	return a, nil
}

// dispatchSession is the part of the app that only exists while requests
// are being sent: the transport with its resolved key, the dispatcher and
// the transcript sink.
type dispatchSession struct {
	service    *application.Service
	dispatcher *application.Dispatcher
	sink       *transcriptfile.Sink
}

func (a *app) openDispatchSession(ctx context.Context) (*dispatchSession, error) {
	var apiKey string
	if a.cfg.Dispatch.SendRequests {
		key, err := a.resolveAPIKey(ctx)
		if err != nil {
			return nil, err
		}
		apiKey = key
	}

	session := &dispatchSession{}
	notifier := application.NewNotifier()

	var recorder *application.OutputRecorder
	if a.cfg.Recording.Enabled {
		sink, err := transcriptfile.Open(a.cfg.Recording.Dir, a.cfg.Recording.Prefix, a.clock.Now())
		if err != nil {
			return nil, fmt.Errorf("open transcript: %w", err)
		}
		session.sink = sink
		recorder = application.NewOutputRecorder(sink, notifier)
		a.logger.Debug("recording transcript", "path", sink.Path())
	}

	dispatcher, err := application.NewDispatcher(application.DispatchSettings{
		Model:                   a.cfg.API.Model,
		SendRequests:            a.cfg.Dispatch.SendRequests,
		MaxWindow:               a.cfg.History.MaxWindow,
		SerializePerPersonality: a.cfg.Dispatch.SerializePerPersonality,
	}, application.DispatcherDeps{
		Transport: openai.Transport{
			URL:            a.cfg.API.URL,
			APIKey:         apiKey,
			HTTPClient:     a.httpClient,
			RequestTimeout: a.cfg.API.Timeout,
		},
		Store:       a.store,
		Limiter:     a.limiter,
		Interpreter: application.NewResponseInterpreter(a.cfg.Denial.Sentinel),
		Recorder:    recorder,
		Notifier:    notifier,
		Clock:       a.clock,
		Logger:      a.logger,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("wire dispatcher: %w", err), session.closeSink())
	}

	session.dispatcher = dispatcher
	session.service = application.NewService(a.repo, a.store, dispatcher, a.templater)

	return session, nil
}

// Close stops new requests, lets in-flight ones finish and then releases
// the transcript file.
func (s *dispatchSession) Close() error {
	s.dispatcher.Close()
	s.dispatcher.Wait()
	return s.closeSink()
}

func (s *dispatchSession) closeSink() error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Close()
}

func (a *app) resolveAPIKey(ctx context.Context) (string, error) {
	if a.cfg.API.Key != "" {
		return a.cfg.API.Key, nil
	}

	key, err := a.secretStore.Get(ctx, a.cfg.API.KeyRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", errNoAPIKey
		}
		return "", fmt.Errorf("load API key %q: %w", a.cfg.API.KeyRef, err)
	}

	return key, nil
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		errs = append(errs, closer())
	}
	a.closers = nil

	return errors.Join(errs...)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLogLevel(raw string) (slog.Level, error) {
	return config.ParseLevel(raw)
}

// syncWriter lets the dispatcher's logger and the spinner share stderr.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
