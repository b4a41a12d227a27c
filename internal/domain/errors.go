package domain

import "errors"

var (
	ErrPersonalityNotFound = errors.New("personality not found")
	ErrSecretNotFound      = errors.New("secret not found")

	// ErrTransport covers network failures and non-success HTTP statuses.
	ErrTransport = errors.New("completion transport failed")
	// ErrParse covers malformed response bodies and responses without choices.
	ErrParse = errors.New("completion response unparseable")
	// ErrSink covers transcript write failures.
	ErrSink             = errors.New("transcript sink failed")
	ErrSinkClosed       = errors.New("transcript sink closed")
	ErrDispatcherClosed = errors.New("dispatcher closed")
)
