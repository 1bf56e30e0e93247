// Package llm abstracts the text-generation collaborator. Providers return
// structured JSON validated against a schema; decorators add retry and
// request event logging.
package llm

import (
	"context"
	"encoding/json"
	"time"
)

// Provider is the text-generation collaborator contract.
type Provider interface {
	// Generate sends a prompt and returns the response. When the request
	// carries a Schema, Content is JSON validated against it; otherwise
	// Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the collaborator's role and constraints.
	System string

	// Messages is the conversation. Single-turn generation (the common
	// case here) carries one user message.
	Messages []Message

	// Schema, when set, requests structured JSON output conforming to it.
	Schema *Schema

	MaxTokens   int
	Temperature float64

	// Timeout bounds this request. Zero means the provider default.
	Timeout time.Duration
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	Name        string // kebab-case, e.g. "synthesis-prompt"
	Description string
	Definition  map[string]any
}

// Response is the collaborator's output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // "end", "max_tokens"
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
