package rag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

//go:generate mockgen -source=executor.go -destination=mock_executor.go -package=rag

// CompletionClient defines the external generation capability.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, prompt string, params GenerationParams) (string, error)
	Model() string
}

// GenerationParams carries the recognized tuning options for a completion
// call.
type GenerationParams struct {
	Temperature     float64
	MaxOutputTokens int64
	Language        string
}

// RetryConfig configures the retry behavior for generation calls.
type RetryConfig struct {
	MaxAttempts     int           // Total number of attempts, including the first
	InitialInterval time.Duration // Initial backoff interval
	MaxInterval     time.Duration // Maximum backoff interval
	AttemptTimeout  time.Duration // Per-attempt deadline
}

// DefaultRetryConfig returns sensible defaults for LLM API calls.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		AttemptTimeout:  30 * time.Second,
	}
}

// retryablePatterns groups error substrings by category, matched
// case-insensitively against err.Error().
//
// String matching is used because LLM provider SDKs do not expose typed
// errors for transient failures. Authentication and malformed-request
// errors match none of these groups and fail immediately.
var retryablePatterns = [][]string{
	{"rate limit", "quota exceeded", "429"},      // rate limiting
	{"500", "502", "503", "504", "unavailable"},  // transient server errors
	{"connection reset", "timeout", "temporary"}, // network errors
}

// retryableError reports whether err is transient and should trigger a retry.
func retryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	for _, group := range retryablePatterns {
		for _, pattern := range group {
			if strings.Contains(errStr, pattern) {
				return true
			}
		}
	}
	return false
}

// Executor invokes the generation capability with bounded retries,
// exponential backoff and a per-attempt deadline.
type Executor struct {
	client CompletionClient
	retry  RetryConfig
	params GenerationParams
}

// NewExecutor creates a generation executor.
func NewExecutor(client CompletionClient, retry RetryConfig, params GenerationParams) *Executor {
	return &Executor{
		client: client,
		retry:  retry,
		params: params,
	}
}

// Generate runs the completion call for a request. Transient failures are
// retried up to the configured attempt bound; non-transient failures fail
// immediately. When every attempt fails transiently the executor returns a
// GenerationUnavailableError carrying the last cause.
func (e *Executor) Generate(ctx context.Context, request GenerationRequest) (Answer, error) {
	var lastErr error
	delay := e.retry.InitialInterval
	start := time.Now()

	params := e.params
	if request.Query.Language != "" {
		params.Language = request.Query.Language
	}

	for attempt := 1; attempt <= e.retry.MaxAttempts; attempt++ {
		text, err := e.attempt(ctx, request.SystemPrompt, request.Prompt, params)
		if err == nil {
			return Answer{
				Text:    text,
				Sources: request.Context.SourceIDs(),
				Latency: time.Since(start),
				Model:   e.client.Model(),
			}, nil
		}

		// Caller cancellation is not a provider failure; abandon the call.
		if ctx.Err() != nil {
			return Answer{}, ctx.Err()
		}

		lastErr = err

		if !retryableError(err) {
			return Answer{}, fmt.Errorf("generate answer: %w", err)
		}

		if attempt == e.retry.MaxAttempts {
			break
		}

		slog.Debug("Retrying generation after transient error",
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return Answer{}, ctx.Err()
		case <-time.After(delay):
			delay = min(delay*2, e.retry.MaxInterval)
		}
	}

	return Answer{}, &GenerationUnavailableError{
		Attempts: e.retry.MaxAttempts,
		Err:      lastErr,
	}
}

// attempt runs a single completion call under the per-attempt deadline.
func (e *Executor) attempt(ctx context.Context, systemPrompt, prompt string, params GenerationParams) (string, error) {
	attemptCtx := ctx
	if e.retry.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, e.retry.AttemptTimeout)
		defer cancel()
	}
	return e.client.Complete(attemptCtx, systemPrompt, prompt, params)
}
