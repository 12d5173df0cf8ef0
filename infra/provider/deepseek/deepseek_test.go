package deepseek

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/njagi/paylens/pkg/ai"
	"github.com/njagi/paylens/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return New(config.AIConfig{
		APIKey:      "sk-test",
		BaseURL:     serverURL,
		Model:       "deepseek-chat",
		HTTPTimeout: 2 * time.Second,
	}, slog.Default())
}

func TestComplete_SendsAuthAndPayload(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Hello!"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.Complete(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hi"},
	}, 0.1)

	require.NoError(t, err)
	assert.Equal(t, "Hello!", got)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "deepseek-chat", gotBody["model"])
	assert.Equal(t, 0.1, gotBody["temperature"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "Hi", msg["content"])
}

func TestComplete_MapsErrorStatuses(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantCode   ai.ErrorCode
		wantStatus int
	}{
		{"payment required", 402, `{"error": {"message": "Insufficient Balance"}}`,
			ai.CodeInsufficientBalance, 402},
		{"unauthorized", 401, `{"error": {"message": "bad key"}}`,
			ai.CodeInvalidAPIKey, 500},
		{"rate limited", 429, `{}`,
			ai.CodeRateLimitExceeded, 429},
		{"server error", 502, `{}`,
			ai.CodeServiceUnavailable, 503},
		{"other client error", 404, `{"error": {"message": "no such model"}}`,
			ai.CodeAPIError, 404},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.Complete(context.Background(), []ai.Message{
				{Role: ai.RoleUser, Content: "Hi"},
			}, 0.1)

			var aiErr *ai.Error
			require.ErrorAs(t, err, &aiErr)
			assert.Equal(t, tc.wantCode, aiErr.Code)
			assert.Equal(t, tc.wantStatus, aiErr.Status)
		})
	}
}

func TestComplete_TimeoutBecomesRequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := New(config.AIConfig{
		APIKey:      "sk-test",
		BaseURL:     server.URL,
		Model:       "deepseek-chat",
		HTTPTimeout: 50 * time.Millisecond,
	}, slog.Default())

	_, err := client.Complete(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hi"},
	}, 0.1)

	var aiErr *ai.Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ai.CodeRequestTimeout, aiErr.Code)
	assert.Equal(t, 504, aiErr.Status)
}

func TestComplete_ConnectionRefusedBecomesUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hi"},
	}, 0.1)

	var aiErr *ai.Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ai.CodeServiceUnavailable, aiErr.Code)
}

func TestComplete_EmptyChoicesIsInternalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "Hi"},
	}, 0.1)

	var aiErr *ai.Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ai.CodeInternalError, aiErr.Code)
}
