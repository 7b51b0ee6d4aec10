package services

import "errors"

var (
	// ErrInsufficientTokens is returned when an identification is attempted
	// with an exhausted token balance.
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrTransportFailure is returned when an external endpoint cannot be
	// reached or answers with a non-2xx status.
	ErrTransportFailure = errors.New("identification service unavailable")

	// ErrParseFailure is returned when the recognition response does not
	// contain a well-formed JSON object.
	ErrParseFailure = errors.New("failed to parse identification response")

	// ErrInvalidInput is returned for malformed user input such as bad
	// card-like fields or a negative credit amount.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a requested entry does not exist.
	ErrNotFound = errors.New("not found")
)
