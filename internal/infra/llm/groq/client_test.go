package groq

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Options{APIKey: "   "})
	require.EqualError(t, err, "groq api key cannot be empty")
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client, err := NewClient(Options{APIKey: "k"})
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, client.BaseURL())

	client, err = NewClient(Options{APIKey: "k", BaseURL: "http://localhost:9999/v1/"})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999/v1", client.BaseURL())
}

func TestCreateChatCompletion(t *testing.T) {
	var (
		method, path, auth string
		decodeErr          error
		received           struct {
			Model       string    `json:"model"`
			Messages    []Message `json:"messages"`
			Temperature float32   `json:"temperature"`
			MaxTokens   int       `json:"max_tokens"`
		}
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, auth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		decodeErr = json.NewDecoder(r.Body).Decode(&received)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.3-70b-versatile",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Emotion: joy\nSummary: Done."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 180, "completion_tokens": 20, "total_tokens": 200}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(Options{APIKey: "secret", BaseURL: server.URL, Timeout: time.Second})
	require.NoError(t, err)

	resp, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model:       "llama-3.3-70b-versatile",
		Messages:    []Message{{Role: RoleUser, Content: "analyze"}},
		Temperature: 0.5,
		MaxTokens:   300,
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "/chat/completions", path)
	require.Equal(t, "Bearer secret", auth)
	require.NoError(t, decodeErr)
	require.Equal(t, "llama-3.3-70b-versatile", received.Model)
	require.Equal(t, []Message{{Role: "user", Content: "analyze"}}, received.Messages)
	require.InDelta(t, 0.5, received.Temperature, 1e-6)
	require.Equal(t, 300, received.MaxTokens)

	require.Equal(t, "chatcmpl-1", resp.ID)
	require.Len(t, resp.Choices, 1)
	require.Equal(t, "Emotion: joy\nSummary: Done.", resp.Choices[0].Message.Content)
	require.Equal(t, "stop", resp.Choices[0].FinishReason)
	require.Equal(t, Usage{PromptTokens: 180, CompletionTokens: 20, TotalTokens: 200}, resp.Usage)
}

func TestCreateChatCompletionSurfacesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid API Key", "type": "invalid_request_error", "code": "invalid_api_key"}}`))
	}))
	defer server.Close()

	client, err := NewClient(Options{APIKey: "bad", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "x"}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "request chat completion")
	require.Contains(t, err.Error(), "Invalid API Key")
}

func TestCreateChatCompletionHonoursContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer func() {
		close(release)
		server.CloseClientConnections()
		server.Close()
	}()

	client, err := NewClient(Options{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.CreateChatCompletion(ctx, ChatCompletionRequest{Model: "m", Messages: []Message{{Role: RoleUser, Content: "x"}}})
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
