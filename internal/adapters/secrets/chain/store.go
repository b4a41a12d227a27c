// Package chain layers two secret stores: the primary answers when it
// can, the fallback covers for it otherwise.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/persona-relay/internal/adapters/secrets/file"
	passstore "github.com/bnema/persona-relay/internal/adapters/secrets/pass"
	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return errors.Join(
		fmt.Errorf("primary backend put: %w", err),
		fmt.Errorf("fallback backend put: %w", fallbackErr),
	)
}

// Get reports domain.ErrSecretNotFound only when neither backend has the
// key; any other failure in either backend is surfaced as is.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	if errors.Is(fallbackErr, domain.ErrSecretNotFound) && !errors.Is(err, domain.ErrSecretNotFound) && !errors.Is(err, passstore.ErrUnavailable) {
		return "", fmt.Errorf("primary backend get: %w", err)
	}

	return "", errors.Join(
		fmt.Errorf("primary backend get: %w", err),
		fmt.Errorf("fallback backend get: %w", fallbackErr),
	)
}

// Delete removes the key from both backends so a stale copy in the
// fallback cannot resurface after the primary entry is gone.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	if err == nil || fallbackErr == nil {
		return nil
	}

	return errors.Join(
		fmt.Errorf("primary backend delete: %w", err),
		fmt.Errorf("fallback backend delete: %w", fallbackErr),
	)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
