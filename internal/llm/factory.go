package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// EventSink receives request events from the logging decorator. The store
// package's EventRepo satisfies this.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, data RequestEvent) error
}

// NewProvider creates a Provider from configuration, wrapped with retry
// and, when a sink is given, request event logging.
func NewProvider(ctx context.Context, cfg Config, sink EventSink) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, cfg.Timeout)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, cfg.Timeout)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, cfg.Timeout)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	p := WithRetry(base, cfg.Retry)
	if sink != nil {
		p = WithLogging(p, sink)
	}
	return p, nil
}

// resolveModel maps a friendly model name to a provider model ID, passing
// unknown names through as direct IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

// withTimeout applies the request timeout, falling back to the provider
// default. Returns a no-op cancel when neither is set.
func withTimeout(ctx context.Context, reqTimeout, defaultTimeout time.Duration) (context.Context, context.CancelFunc) {
	timeout := reqTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// classifyTimeout returns an ErrTimeout when err is deadline-shaped, nil
// otherwise. Caller cancellation is left alone so it propagates as-is.
func classifyTimeout(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() == context.Canceled {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrTimeout{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ErrTimeout{Err: err}
	}
	return nil
}

// normalizeStopReason maps provider stop reasons to "end"/"max_tokens".
func normalizeStopReason(reason string) string {
	switch reason {
	case "max_tokens", "length":
		return "max_tokens"
	default:
		return "end"
	}
}
