package domain

type TemplateKind string

const (
	TemplateReply         TemplateKind = "reply"
	TemplateVisualCues    TemplateKind = "visual_cues"
	TemplateReactionHints TemplateKind = "reaction"
)

type DispatchState string

const (
	StateIdle      DispatchState = "idle"
	StateWaiting   DispatchState = "waiting"
	StateInFlight  DispatchState = "in_flight"
	StateDelivered DispatchState = "delivered"
	StateDenied    DispatchState = "denied"
	StateFailed    DispatchState = "failed"

	// StateSkipped means sending is disabled; nothing was dispatched.
	StateSkipped DispatchState = "skipped"
	// StateRejected means the request never reached the rate limiter: the
	// dispatcher was closed or the caller's context ended first.
	StateRejected DispatchState = "rejected"
)

// Terminal reports whether the state ends a request.
func (s DispatchState) Terminal() bool {
	switch s {
	case StateDelivered, StateDenied, StateFailed, StateSkipped, StateRejected:
		return true
	default:
		return false
	}
}

// PendingRequest lives for a single completion call.
type PendingRequest struct {
	ID             string
	Kind           TemplateKind
	Personality    Personality
	Prompt         string
	OriginalPrompt string
	// Callback receives the sanitized completion. It is invoked only for
	// delivered requests and may be nil.
	Callback func(content string)
	// OnPhase, when set, is called as the request enters StateWaiting and
	// StateInFlight. It runs on the dispatching goroutine.
	OnPhase func(state DispatchState)
}

type Result struct {
	RequestID     string
	PersonalityID PersonalityID
	State         DispatchState
	Content       string
	Err           error
}

// CompletionRequest is what the core hands to a completion transport.
type CompletionRequest struct {
	Model            string
	Messages         []Message
	Temperature      float64
	PresencePenalty  float64
	FrequencyPenalty float64
}
