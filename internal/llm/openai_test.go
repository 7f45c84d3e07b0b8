package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Chat(t *testing.T) {
	t.Run("sends request and returns first choice", func(t *testing.T) {
		var got chatRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"content":"Quote : hi"}},{"message":{"content":"ignored"}}]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL + "/"})
		text, err := client.Chat(context.Background(), "gpt-4o", []Message{
			SystemMessage("sys"),
			UserMessage("user"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Quote : hi", text)
		assert.Equal(t, "gpt-4o", got.Model)
		assert.Equal(t, 4000, got.MaxTokens)
		assert.InDelta(t, 0.8, got.Temperature, 0.0001)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, RoleSystem, got.Messages[0].Role)
		assert.Equal(t, "user", got.Messages[1].Content)
	})

	t.Run("non-2xx becomes APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"bad key"}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{APIKey: "bad", BaseURL: server.URL})
		_, err := client.Chat(context.Background(), "gpt-4o", []Message{UserMessage("x")})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "bad key")
		assert.Equal(t, KindAuth, Classify(err))
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{BaseURL: server.URL})
		_, err := client.Chat(context.Background(), "gpt-4o", nil)
		assert.Error(t, err)
	})

	t.Run("refused connection is a network error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := NewOpenAIClient(OpenAIConfig{BaseURL: url})
		_, err := client.Chat(context.Background(), "gpt-4o", nil)

		require.Error(t, err)
		assert.Equal(t, KindNetwork, Classify(err))
	})
}

func TestNewCompleter(t *testing.T) {
	c, err := NewCompleter(ProviderConfig{})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewCompleter(ProviderConfig{Provider: "Anthropic"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, c)

	_, err = NewCompleter(ProviderConfig{Provider: "gemini"})
	assert.Error(t, err)
}
