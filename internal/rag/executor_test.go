package rag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

func testRetryConfig(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:     maxAttempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     4 * time.Millisecond,
		AttemptTimeout:  0,
	}
}

func testRequest(t *testing.T) GenerationRequest {
	t.Helper()
	query := mustQuery(t, "What is the limitation period for a consumer complaint?")
	assembled := AssembledContext{Passages: []RetrievedPassage{
		{SourceID: "s1", Text: "Section 69 prescribes two years.", Score: 0.9, Rank: 0},
	}}
	return GenerationRequest{
		Query:        query,
		Context:      assembled,
		SystemPrompt: "system",
		Prompt:       "prompt",
	}
}

func TestExecutor_GenerateRetriesTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	request := testRequest(t)
	client := NewMockCompletionClient(ctrl)
	gomock.InOrder(
		client.EXPECT().
			Complete(gomock.Any(), "system", "prompt", gomock.Any()).
			Return("", context.DeadlineExceeded),
		client.EXPECT().
			Complete(gomock.Any(), "system", "prompt", gomock.Any()).
			Return("", context.DeadlineExceeded),
		client.EXPECT().
			Complete(gomock.Any(), "system", "prompt", gomock.Any()).
			Return("Two years from the date the cause of action arose.", nil),
	)
	client.EXPECT().Model().Return("gpt-4.1-mini").AnyTimes()

	executor := NewExecutor(client, testRetryConfig(3), GenerationParams{})
	answer, err := executor.Generate(context.Background(), request)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if answer.Text != "Two years from the date the cause of action arose." {
		t.Errorf("Generate() answer = %q, want the third attempt's result", answer.Text)
	}
	if answer.Model != "gpt-4.1-mini" {
		t.Errorf("Generate() model = %q, want %q", answer.Model, "gpt-4.1-mini")
	}
	if len(answer.Sources) != 1 || answer.Sources[0] != "s1" {
		t.Errorf("Generate() sources = %v, want [s1]", answer.Sources)
	}
}

func TestExecutor_GenerateExhaustsRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	request := testRequest(t)
	lastCause := errors.New("503 service unavailable")
	client := NewMockCompletionClient(ctrl)
	client.EXPECT().
		Complete(gomock.Any(), "system", "prompt", gomock.Any()).
		Return("", lastCause).
		Times(3)

	executor := NewExecutor(client, testRetryConfig(3), GenerationParams{})
	_, err := executor.Generate(context.Background(), request)

	var unavailable *GenerationUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Generate() error = %v, want GenerationUnavailableError", err)
	}
	if unavailable.Attempts != 3 {
		t.Errorf("GenerationUnavailableError.Attempts = %d, want 3", unavailable.Attempts)
	}
	if !errors.Is(err, lastCause) {
		t.Errorf("GenerationUnavailableError does not wrap the last underlying error")
	}
}

func TestExecutor_GenerateDoesNotRetryNonTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	request := testRequest(t)
	client := NewMockCompletionClient(ctrl)
	client.EXPECT().
		Complete(gomock.Any(), "system", "prompt", gomock.Any()).
		Return("", errors.New("401 invalid api key")).
		Times(1)

	executor := NewExecutor(client, testRetryConfig(3), GenerationParams{})
	_, err := executor.Generate(context.Background(), request)

	if err == nil {
		t.Fatal("Generate() expected error for authentication failure")
	}
	var unavailable *GenerationUnavailableError
	if errors.As(err, &unavailable) {
		t.Error("Generate() wrapped a non-transient failure as GenerationUnavailableError")
	}
}

func TestExecutor_GenerateHonorsCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	request := testRequest(t)
	client := NewMockCompletionClient(ctrl)
	client.EXPECT().
		Complete(gomock.Any(), "system", "prompt", gomock.Any()).
		DoAndReturn(func(context.Context, string, string, GenerationParams) (string, error) {
			cancel()
			return "", errors.New("timeout")
		}).
		Times(1)

	executor := NewExecutor(client, testRetryConfig(3), GenerationParams{})
	_, err := executor.Generate(ctx, request)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled after caller cancellation", err)
	}
}

func TestRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"rate limit", errors.New("429 Too Many Requests"), true},
		{"server error", errors.New("upstream returned 502"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"auth failure", errors.New("401 Unauthorized"), false},
		{"malformed request", errors.New("invalid request: missing model"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableError(tt.err); got != tt.want {
				t.Errorf("retryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
