// Package ai defines the chat-completion provider contract consumed by the
// chat passthrough and the financial agent. The concrete DeepSeek client
// lives under infra/provider/deepseek.
package ai

import "context"

// Role tags a chat message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Client is the single operation this service needs from an LLM provider.
type Client interface {
	// Complete sends the messages at the given sampling temperature and
	// returns the generated text. Failures are *Error values from the
	// closed set in errors.go.
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}
