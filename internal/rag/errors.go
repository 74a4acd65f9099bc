package rag

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery rejects query text that is empty after normalization.
// It is returned before any external call is made.
var ErrInvalidQuery = errors.New("query is empty after normalization")

// ErrPromptTooLarge rejects a prompt whose combined size exceeds the
// configured ceiling. The query itself is never truncated to fit.
var ErrPromptTooLarge = errors.New("assembled prompt exceeds maximum size")

// GenerationUnavailableError reports that every generation attempt failed
// transiently. It carries the last underlying error for diagnostics and is
// surfaced to callers as a retryable-later failure.
type GenerationUnavailableError struct {
	Attempts int
	Err      error
}

func (e *GenerationUnavailableError) Error() string {
	return fmt.Sprintf("generation unavailable after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationUnavailableError) Unwrap() error {
	return e.Err
}
