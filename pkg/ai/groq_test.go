package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/hcp-crm/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GroqClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGroqClient(config.GroqConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "llama3-70b-8192",
		Timeout:     5 * time.Second,
		Temperature: 0,
	})
	require.NoError(t, err)
	return client
}

func TestNewGroqClient_MissingKey(t *testing.T) {
	client, err := NewGroqClient(config.GroqConfig{APIKey: "  "})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGroqClient_Complete(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama3-70b-8192",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"hcp_name\": \"Dr. Smith\"}"}, "finish_reason": "stop"}]
		}`))
	})

	out, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "extract"},
		{Role: RoleUser, Content: "Met Dr. Smith"},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"hcp_name": "Dr. Smith"}`, out)
	assert.Equal(t, "llama3-70b-8192", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "Met Dr. Smith", got.Messages[1].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, got.ResponseFormat.Type)
}

func TestGroqClient_CompleteProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "over capacity", "type": "server_error"}}`))
	})

	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq chat completion")
}

func TestGroqClient_CompleteNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	})

	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.EqualError(t, err, "empty response from groq")
}

func TestGroqClient_SendsTemperature(t *testing.T) {
	tests := []struct {
		name        string
		temperature float32
		check       func(t *testing.T, got float64)
	}{
		{"zero stays deterministic", 0, func(t *testing.T, got float64) {
			assert.Greater(t, got, 0.0)
			assert.Less(t, got, 1e-30)
		}},
		{"configured value", 0.7, func(t *testing.T, got float64) {
			assert.InDelta(t, 0.7, got, 1e-6)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"choices": [{"index": 0, "message": {"role": "assistant", "content": "{}"}}]}`))
			}))
			t.Cleanup(srv.Close)

			client, err := NewGroqClient(config.GroqConfig{
				APIKey:      "test-key",
				BaseURL:     srv.URL,
				Model:       "llama3-70b-8192",
				Temperature: tt.temperature,
			})
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
			require.NoError(t, err)

			require.Contains(t, body, "temperature")
			got, ok := body["temperature"].(float64)
			require.True(t, ok)
			tt.check(t, got)
		})
	}
}
