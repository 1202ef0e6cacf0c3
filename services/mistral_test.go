package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pmtrec/portofolio/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMistralClient(baseURL string) ChatCompleter {
	return NewMistralClient(map[string]string{
		"MISTRAL_BASE_URL": baseURL,
		"MISTRAL_API_KEY":  "sk_test",
	})
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var received chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Je peux vous aider."}}]}`))
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	reply, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "prompt"},
		{Role: "user", Content: "question"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Je peux vous aider.", reply)

	assert.Equal(t, "mistral-small", received.Model)
	assert.Equal(t, 300, received.MaxTokens)
	assert.InDelta(t, 0.7, received.Temperature, 0.001)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "question", received.Messages[1].Content)
}

func TestCompleteFailsOnNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "q"}})
	assert.Error(t, err)
}

func TestCompleteFailsOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "q"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEmptyCompletion)
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	client := NewMistralClient(map[string]string{})

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "q"}})
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
}
