//go:build unit
// +build unit

package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrserhiy/litios/internal/domain/llm"
	"github.com/ukrserhiy/litios/internal/pkg/config"
	"github.com/ukrserhiy/litios/internal/pkg/testutil"
)

const completionBody = `{"id":"gen-1","choices":[{"message":{"role":"assistant","content":"7"}}]}`

func newTestClient(t *testing.T, baseURL string, maxRetries int) llm.ChatClient {
	t.Helper()

	settings := &config.OpenRouterSettings{
		BaseURL:      baseURL,
		DefaultModel: config.DefaultOpenRouterModel,
		Timeout:      5 * time.Second,
		MaxRetries:   maxRetries,
		SiteURL:      "https://liti.example.com",
		SiteName:     "LITI",
	}

	c, err := NewClient(settings, testutil.SetupTestLogger(t),
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }))
	require.NoError(t, err)
	return c
}

func TestClient_Complete_Success(t *testing.T) {
	var gotBody llm.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-or-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "https://liti.example.com", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "LITI", r.Header.Get("X-Title"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/api/v1/", 0)

	result, err := c.Complete(context.Background(), "sk-or-test", llm.NewCheckRequest("anthropic/claude-haiku-4.5"))
	require.NoError(t, err)
	assert.JSONEq(t, completionBody, string(result))

	assert.Equal(t, "anthropic/claude-haiku-4.5", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, llm.CheckSystemPrompt, gotBody.Messages[0].Content)
	assert.Equal(t, 10, gotBody.MaxTokens)
}

func TestClient_Complete_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"No auth credentials found","code":401}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, 3)

	_, err := c.Complete(context.Background(), "bad-key", llm.NewCheckRequest("m"))
	require.Error(t, err)

	var upstreamErr *llm.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "No auth credentials found")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_Complete_RetriesTransientStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(completionBody))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, 2)

	result, err := c.Complete(context.Background(), "sk", llm.NewCheckRequest("m"))
	require.NoError(t, err)
	assert.JSONEq(t, completionBody, string(result))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Complete_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, 1)

	_, err := c.Complete(context.Background(), "sk", llm.NewCheckRequest("m"))
	require.Error(t, err)

	var upstreamErr *llm.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.StatusCode)
	assert.Equal(t, "upstream down", upstreamErr.Body)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_Complete_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, 2)

	_, err := c.Complete(context.Background(), "sk", llm.NewCheckRequest("m"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestClient_Complete_MissingKey(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1", 0)

	_, err := c.Complete(context.Background(), "  ", llm.NewCheckRequest("m"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not provided")
}

func TestClient_Complete_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, "sk", llm.NewCheckRequest("m"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewClient_InvalidSettings(t *testing.T) {
	_, err := NewClient(&config.OpenRouterSettings{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
