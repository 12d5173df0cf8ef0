// Package deepseek implements the ai.Client contract against DeepSeek's
// OpenAI-compatible chat-completions endpoint.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/njagi/paylens/pkg/ai"
	"github.com/njagi/paylens/pkg/config"
)

// Client talks to the DeepSeek chat-completions API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a DeepSeek client from config.
func New(cfg config.AIConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

type chatRequest struct {
	Model       string       `json:"model"`
	Messages    []ai.Message `json:"messages"`
	Temperature float64      `json:"temperature"`
}

// chatResponse is the subset of the completion payload we consume.
// See: https://api-docs.deepseek.com/api/create-chat-completion
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete implements ai.Client.
func (c *Client) Complete(
	ctx context.Context,
	messages []ai.Message,
	temperature float64,
) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", ai.ErrInternal("failed to encode chat request")
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", ai.ErrInternal("failed to create chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Info("sending chat request to AI provider", "model", c.model, "messages", len(messages))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.transportError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		c.logger.Error("failed to decode provider response", "error", err)
		return "", ai.ErrInternal("failed to decode provider response")
	}
	if len(completion.Choices) == 0 {
		return "", ai.ErrInternal("provider returned no completion choices")
	}

	c.logger.Info("received response from AI provider")
	return completion.Choices[0].Message.Content, nil
}

func (c *Client) transportError(err error) *ai.Error {
	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	if timedOut {
		c.logger.Error("AI provider request timed out", "error", err)
		return ai.ErrRequestTimeout()
	}
	c.logger.Error("AI provider connection failed", "error", err)
	return ai.ErrServiceUnavailable(
		"Unable to connect to AI service. Please check your internet connection.")
}

func (c *Client) statusError(resp *http.Response) *ai.Error {
	body, _ := io.ReadAll(resp.Body)

	message := http.StatusText(resp.StatusCode)
	var apiResp chatResponse
	if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Error != nil {
		message = apiResp.Error.Message
	}

	c.logger.Error("AI provider returned error status",
		"status", resp.StatusCode, "message", message)

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		return ai.ErrInsufficientBalance()
	case resp.StatusCode == http.StatusUnauthorized:
		return ai.ErrInvalidAPIKey()
	case resp.StatusCode == http.StatusTooManyRequests:
		return ai.ErrRateLimitExceeded()
	case resp.StatusCode >= 500:
		return ai.ErrServiceUnavailable(
			fmt.Sprintf("AI service is experiencing issues (Status: %d)", resp.StatusCode))
	default:
		return ai.ErrAPIError(resp.StatusCode, "AI service error: "+message)
	}
}
