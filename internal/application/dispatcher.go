package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
	"github.com/google/uuid"
)

type DispatchSettings struct {
	Model        string
	SendRequests bool
	// MaxWindow bounds how many of the newest history messages are sent.
	// Zero sends the whole history.
	MaxWindow int
	// SerializePerPersonality admits at most one in-flight request per
	// personality. When false, overlapping requests for the same
	// personality race on history order.
	SerializePerPersonality bool
}

type DispatcherDeps struct {
	Transport   ports.CompletionTransport
	Store       ports.ConversationStore
	Limiter     *RateLimiter
	Interpreter ResponseInterpreter
	// Recorder is optional; nil disables transcript recording.
	Recorder *OutputRecorder
	Notifier *Notifier
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Dispatcher moves each PendingRequest through
// idle -> waiting -> in_flight -> delivered | denied | failed.
type Dispatcher struct {
	settings    DispatchSettings
	transport   ports.CompletionTransport
	store       ports.ConversationStore
	limiter     *RateLimiter
	interpreter ResponseInterpreter
	recorder    *OutputRecorder
	notifier    *Notifier
	clock       ports.Clock
	logger      *slog.Logger

	mu     sync.Mutex
	closed bool
	gates  map[domain.PersonalityID]chan struct{}
	tasks  sync.WaitGroup
}

var (
	errNilTransport = errors.New("completion transport is nil")
	errNilStore     = errors.New("conversation store is nil")
	errNilLimiter   = errors.New("rate limiter is nil")
)

func NewDispatcher(settings DispatchSettings, deps DispatcherDeps) (*Dispatcher, error) {
	if deps.Transport == nil {
		return nil, errNilTransport
	}
	if deps.Store == nil {
		return nil, errNilStore
	}
	if deps.Limiter == nil {
		return nil, errNilLimiter
	}
	if deps.Notifier == nil {
		deps.Notifier = NewNotifier()
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Dispatcher{
		settings:    settings,
		transport:   deps.Transport,
		store:       deps.Store,
		limiter:     deps.Limiter,
		interpreter: deps.Interpreter,
		recorder:    deps.Recorder,
		notifier:    deps.Notifier,
		clock:       deps.Clock,
		logger:      deps.Logger,
		gates:       make(map[domain.PersonalityID]chan struct{}),
	}, nil
}

func (d *Dispatcher) Notifier() *Notifier {
	return d.notifier
}

// Submit runs the request on its own goroutine. The returned channel
// receives exactly one Result and is then closed.
func (d *Dispatcher) Submit(ctx context.Context, request domain.PendingRequest) <-chan domain.Result {
	results := make(chan domain.Result, 1)

	d.tasks.Add(1)
	go func() {
		defer d.tasks.Done()
		defer close(results)
		results <- d.Dispatch(ctx, request)
	}()

	return results
}

// Dispatch runs one request to a terminal state on the calling goroutine.
// It suspends at the per-personality admission gate, at the limiter's
// global slot and interval wait, and for the transport round trip.
func (d *Dispatcher) Dispatch(ctx context.Context, request domain.PendingRequest) domain.Result {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	result := domain.Result{
		RequestID:     request.ID,
		PersonalityID: request.Personality.ID,
		State:         domain.StateIdle,
	}
	logger := d.logger.With("request", request.ID, "personality", request.Personality.ID)

	if d.isClosed() {
		return reject(result, domain.ErrDispatcherClosed)
	}
	if !d.settings.SendRequests {
		logger.Debug("sending disabled, skipping request")
		result.State = domain.StateSkipped
		return result
	}

	release, err := d.admit(ctx, request.Personality.ID)
	if err != nil {
		return reject(result, fmt.Errorf("wait for personality turn: %w", err))
	}
	defer release()

	result.State = domain.StateWaiting
	d.enter(request, domain.StateWaiting)
	concluded, err := d.limiter.Acquire(ctx, d.clock)
	if err != nil {
		return reject(result, fmt.Errorf("wait for rate limit: %w", err))
	}

	result.State = domain.StateInFlight
	d.enter(request, domain.StateInFlight)
	return d.exchange(ctx, request, result, logger, concluded)
}

// exchange performs the in-flight part of a request. The deferred conclusion
// records the dispatch time and frees the limiter slot exactly once,
// whichever terminal state is reached.
func (d *Dispatcher) exchange(ctx context.Context, request domain.PendingRequest, result domain.Result, logger *slog.Logger, concluded func(time.Time)) domain.Result {
	defer func() {
		concluded(d.clock.Now())
	}()

	personality := request.Personality
	if err := d.store.Append(ctx, personality.ID, domain.NewUserMessage(request.Prompt)); err != nil {
		return d.fail(result, logger, fmt.Errorf("append user message: %w", err))
	}

	history, err := d.store.Snapshot(ctx, personality.ID)
	if err != nil {
		return d.fail(result, logger, fmt.Errorf("snapshot history: %w", err))
	}

	raw, err := d.transport.Complete(ctx, domain.CompletionRequest{
		Model:            d.settings.Model,
		Messages:         domain.TrimWindow(history, d.settings.MaxWindow),
		Temperature:      personality.Params.Temperature,
		PresencePenalty:  personality.Params.PresencePenalty,
		FrequencyPenalty: personality.Params.FrequencyPenalty,
	})
	if err != nil {
		return d.fail(result, logger, err)
	}

	interpretation, err := d.interpreter.Interpret(raw)
	if err != nil {
		return d.fail(result, logger, err)
	}
	if personality.Verbose {
		logger.Debug("completion received",
			"prompt", request.Prompt,
			"content", interpretation.Content,
			"finish_reason", interpretation.FinishReason,
			"usage", interpretation.Usage.String(),
		)
	}

	if d.interpreter.IsDenied(interpretation.Content) {
		logger.Info("completion denied", "sentinel", d.interpreter.Sentinel())
		result.State = domain.StateDenied
		d.notifier.Denied(personality)
		return result
	}

	if err := d.store.Append(ctx, personality.ID, domain.NewAssistantMessage(interpretation.Content)); err != nil {
		return d.fail(result, logger, fmt.Errorf("append assistant message: %w", err))
	}

	delivered := d.interpreter.SanitizeForDelivery(interpretation.Content)
	result.State = domain.StateDelivered
	result.Content = delivered

	if request.Callback != nil {
		request.Callback(delivered)
	}

	if d.recorder != nil {
		if err := d.recorder.Record(ctx, personality, request.OriginalPrompt, delivered); err != nil {
			logger.Warn("skipping transcript record", "err", err)
		}
	}

	return result
}

// Close stops admitting new requests. Requests already submitted run to
// completion.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// Wait blocks until every submitted request has finished.
func (d *Dispatcher) Wait() {
	d.tasks.Wait()
}

func (d *Dispatcher) enter(request domain.PendingRequest, state domain.DispatchState) {
	if request.OnPhase != nil {
		request.OnPhase(state)
	}
}

func (d *Dispatcher) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Dispatcher) admit(ctx context.Context, id domain.PersonalityID) (func(), error) {
	if !d.settings.SerializePerPersonality {
		return func() {}, nil
	}

	gate := d.gateFor(id)
	select {
	case gate <- struct{}{}:
		return func() { <-gate }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (d *Dispatcher) gateFor(id domain.PersonalityID) chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	gate, ok := d.gates[id]
	if !ok {
		gate = make(chan struct{}, 1)
		d.gates[id] = gate
	}

	return gate
}

func (d *Dispatcher) fail(result domain.Result, logger *slog.Logger, err error) domain.Result {
	logger.Error("completion request failed", "err", err)
	result.State = domain.StateFailed
	result.Err = err
	return result
}

func reject(result domain.Result, err error) domain.Result {
	result.State = domain.StateRejected
	result.Err = err
	return result
}
