package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(rps float64) *Client {
	return New(Config{Provider: "test", Timeout: 5 * time.Second, RequestsPerSecond: rps}, zap.NewNop())
}

func TestClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("a"))
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "value", body["key"])

		_, _ = w.Write([]byte(`{"echo":"ok"}`))
	}))
	defer srv.Close()

	var out struct {
		Echo string `json:"echo"`
	}
	err := newTestClient(0).Do(context.Background(), Request{
		Operation: "echo",
		Method:    http.MethodPost,
		URL:       srv.URL,
		Query:     url.Values{"a": {"1"}},
		Headers:   map[string]string{"x-api-key": "secret"},
		Body:      map[string]string{"key": "value"},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Echo)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"no route"}`))
	}))
	defer srv.Close()

	err := newTestClient(0).Do(context.Background(), Request{Operation: "quote", Method: http.MethodGet, URL: srv.URL}, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Equal(t, `{"message":"no route"}`, ErrorBody(err))
}

func TestClient_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var out map[string]any
	err := newTestClient(0).Do(context.Background(), Request{Operation: "quote", Method: http.MethodGet, URL: srv.URL}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestClient_RateLimiterHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(0.001)
	req := Request{Operation: "quote", Method: http.MethodGet, URL: srv.URL}

	// The first call consumes the only token.
	require.NoError(t, client.Do(context.Background(), req, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := client.Do(ctx, req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}
