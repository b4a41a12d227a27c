package ports

import (
	"context"

	"github.com/bnema/persona-relay/internal/domain"
)

// CompletionTransport sends a chat completion request and returns the raw
// response body. Network failures and non-success statuses are reported as
// errors wrapping domain.ErrTransport.
type CompletionTransport interface {
	Complete(ctx context.Context, request domain.CompletionRequest) ([]byte, error)
}
