package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransient(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrTransient{Err: errors.New("500")}},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Errorf("Content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryExhaustionWrapsCause(t *testing.T) {
	cause := &ErrRateLimited{Err: errors.New("429")}
	mock := NewMockProvider(
		MockResponse{Err: cause},
		MockResponse{Err: cause},
		MockResponse{Err: cause},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var exhausted *ErrRetriesExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("err = %v, want ErrRetriesExhausted", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", exhausted.Attempts)
	}
	var rl *ErrRateLimited
	if !errors.As(err, &rl) {
		t.Error("original cause not reachable through the chain")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestNonRetryableFailsFast(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad json")}},
		{"rejected", &ErrRejected{Err: errors.New("401")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: tt.err})
			p := WithRetry(mock, fastRetryConfig())

			_, err := p.Generate(context.Background(), Request{})
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want pass-through of %v", err, tt.err)
			}
			if mock.CallCount() != 1 {
				t.Errorf("calls = %d, want 1 (no retry)", mock.CallCount())
			}
		})
	}
}

func TestTimeoutIsRetryable(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrTimeout{Err: context.DeadlineExceeded}},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestCancellationStopsRetry(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: context.Canceled})
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestValidateResponse(t *testing.T) {
	schema := &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"value": map[string]any{"type": "integer"},
			},
			"required": []any{"value"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"value": 3}`)); err != nil {
		t.Errorf("conforming content rejected: %v", err)
	}

	err := validateResponse(schema, json.RawMessage(`{"value": "three"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}

	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Errorf("nil schema must not validate: %v", err)
	}
}
