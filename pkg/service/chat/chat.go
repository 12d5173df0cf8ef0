// Package chat exposes a direct passthrough to the LLM provider: one user
// message in, the model's reply out, no tools and no history.
package chat

import (
	"context"
	"log/slog"

	"github.com/njagi/paylens/pkg/ai"
)

// defaultTemperature matches the provider's default sampling behaviour.
const defaultTemperature = 1.0

// Service relays chat messages to the LLM provider.
type Service struct {
	client ai.Client
	logger *slog.Logger
}

// New creates the chat service.
func New(client ai.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Send forwards a single user message and returns the model's reply.
// Provider failures come back as *ai.Error so the HTTP layer can map
// them to the right status code.
func (s *Service) Send(ctx context.Context, message string) (string, error) {
	s.logger.Info("chat message received", "length", len(message))

	reply, err := s.client.Complete(ctx, []ai.Message{
		{Role: ai.RoleUser, Content: message},
	}, defaultTemperature)
	if err != nil {
		s.logger.Error("chat completion failed", "error", err)
		return "", err
	}
	return reply, nil
}
