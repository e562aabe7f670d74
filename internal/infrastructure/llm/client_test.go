package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"estimate_agent/internal/config"
	"estimate_agent/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, BackoffBase: time.Millisecond, MaxBackoff: 5 * time.Millisecond}
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.LLMConfig{
		BaseURL:            srv.URL + "/v1/",
		APIKey:             "test-key",
		ChatModel:          "chat-model",
		EmbeddingModel:     "embed-model",
		EmbeddingDimension: 3,
	}
	return NewClient(cfg, append([]ClientOption{WithRetryConfig(fastRetry())}, opts...)...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_EmbedKeepsInputOrder(t *testing.T) {
	var got openai.EmbeddingRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		writeJSON(w, http.StatusOK, map[string]any{
			"object": "list",
			"model":  "embed-model",
			"data": []map[string]any{
				{"object": "embedding", "index": 1, "embedding": []float32{0, 1, 0}},
				{"object": "embedding", "index": 0, "embedding": []float32{1, 0, 0}},
			},
		})
	})

	vectors, err := c.Embed(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0, 0}, {0, 1, 0}}, vectors)
	assert.Equal(t, "embed-model", string(got.Model))
	assert.Equal(t, 3, got.Dimensions)
}

func TestClient_EmbedEmptyInputSkipsProvider(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	})

	vectors, err := c.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
}

func TestClient_EmbedCountMismatch(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, map[string]any{"object": "list", "data": []map[string]any{}})
	})

	_, err := c.Embed(context.Background(), []string{"only"})
	assert.True(t, errors.Is(err, ErrEmbeddingCount))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_CompleteRetriesTransientErrors(t *testing.T) {
	var calls int32
	m := metrics.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		if atomic.AddInt32(&calls, 1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"error": map[string]any{"message": "overloaded", "type": "server_error"},
			})
			return
		}

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Equal(t, "Question: how long?", req.Messages[1].Content)

		writeJSON(w, http.StatusOK, map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"model":  "chat-model",
			"choices": []map[string]any{
				{"index": 0, "finish_reason": "stop", "message": map[string]any{"role": "assistant", "content": "About 3 months."}},
			},
		})
	}, WithMetrics(m))

	answer, err := c.Complete(context.Background(), "be brief", "Question: how long?")
	require.NoError(t, err)
	assert.Equal(t, "About 3 months.", answer)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LLMRequests.WithLabelValues(opComplete, "success")))
}

func TestClient_CompleteDoesNotRetryAuthErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": map[string]any{"message": "bad key", "type": "invalid_request_error"},
		})
	})

	_, err := c.Complete(context.Background(), "", "hi")
	require.Error(t, err)
	assert.False(t, IsTransient(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_CompleteGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error": map[string]any{"message": "slow down", "type": "rate_limit"},
		})
	})

	_, err := c.Complete(context.Background(), "", "hi")
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_CompleteNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": "x", "choices": []any{}})
	})

	_, err := c.Complete(context.Background(), "", "hi")
	assert.True(t, errors.Is(err, ErrEmptyCompletion))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&openai.APIError{HTTPStatusCode: http.StatusBadGateway}))
	assert.True(t, IsTransient(&openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}))
	assert.False(t, IsTransient(&openai.APIError{HTTPStatusCode: http.StatusBadRequest}))
	assert.False(t, IsTransient(context.Canceled))
	assert.True(t, IsTransient(errors.New("connection reset")))
}
