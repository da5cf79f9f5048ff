package apiclient

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

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, serverURL string, apiKey string) *Client {
	t.Helper()

	c, err := New(&Config{
		BaseURL: serverURL,
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
		Logger:  hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "http://localhost:3000", c.BaseURL())
	assert.Equal(t, 30*time.Second, c.Timeout())
}

func TestNew_StripsTrailingSlash(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "no trailing slash", baseURL: "http://mathison.test:3000"},
		{name: "one trailing slash", baseURL: "http://mathison.test:3000/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(&Config{BaseURL: tt.baseURL})
			require.NoError(t, err)
			defer c.Close()

			assert.Equal(t, "http://mathison.test:3000", c.BaseURL())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name:   "Valid config",
			config: &Config{BaseURL: "https://mathison.example.com"},
		},
		{
			name:      "Missing base URL",
			config:    &Config{},
			wantError: true,
			errorMsg:  "baseUrl",
		},
		{
			name:      "Invalid URL scheme",
			config:    &Config{BaseURL: "ftp://mathison.example.com"},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name:      "Missing host",
			config:    &Config{BaseURL: "http://"},
			wantError: true,
			errorMsg:  "host",
		},
		{
			name: "Negative timeout",
			config: &Config{
				BaseURL: "https://mathison.example.com",
				Timeout: -1 * time.Second,
			},
			wantError: true,
			errorMsg:  "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(&Config{BaseURL: "mathison.example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid client config")
}

func TestClient_Headers(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		wantHeader string
	}{
		{name: "with api key", apiKey: "secret-key", wantHeader: "Bearer secret-key"},
		{name: "without api key", apiKey: "", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, tt.wantHeader, r.Header.Get("Authorization"))
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			c := newTestClient(t, server.URL, tt.apiKey)
			_, err := c.Get(context.Background(), "/health", nil)
			require.NoError(t, err)
		})
	}
}

func TestClient_TokenSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer from-source", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := New(&Config{
		BaseURL:     server.URL,
		APIKey:      "ignored",
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"}),
	})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(context.Background(), "/", nil)
	require.NoError(t, err)
}

func TestClient_GetWithQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/beams", r.URL.Path)
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["tags"])
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, hasText := r.URL.Query()["text"]
		assert.False(t, hasText)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 2}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")

	query := Query{}.
		SetString("text", nil).
		AddStrings("tags", []string{"a", "b"}).
		SetInt("limit", Ptr(5))

	raw, err := c.Get(context.Background(), "/api/beams", query)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"total": float64(2)}, raw)
}

func TestClient_PostBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"content": "hello", "tags": []any{}}, body)

		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")

	payload := Payload{}.
		Set("content", "hello").
		SetStrings("tags", []string{}).
		SetStrings("kinds", nil).
		SetBool("pinned", nil)

	raw, err := c.Post(context.Background(), "/api/chat/send", payload)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, raw)
}

func TestClient_NilBodySendsNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
		w.Write([]byte(`{"pinned": true}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")
	_, err := c.Post(context.Background(), "/api/beams/b1/pin", nil)
	require.NoError(t, err)
}

func TestClient_EmptyResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")
	raw, err := c.Delete(context.Background(), "/api/beams/b1/pin")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestClient_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "beam not found"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")
	raw, err := c.Get(context.Background(), "/api/beams/missing", nil)

	require.Error(t, err)
	assert.Nil(t, raw)
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.MethodGet, reqErr.Method)
	assert.Equal(t, server.URL+"/api/beams/missing", reqErr.URL)

	status, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Contains(t, string(statusErr.Body), "beam not found")
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")
	_, err := c.Get(context.Background(), "/health", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.Contains(t, err.Error(), "failed to decode response")
	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	c := newTestClient(t, serverURL, "")
	_, err := c.Get(context.Background(), "/health", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := New(&Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(context.Background(), "/health", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
}

func TestClient_Close(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, "")
	_, err := c.Get(context.Background(), "/health", nil)
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.True(t, c.Closed())

	_, err = c.Get(context.Background(), "/health", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClientClosed))
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_CloseLeavesSuppliedHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	shared := server.Client()
	c, err := New(&Config{BaseURL: server.URL, HTTPClient: shared})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	// The shared client still works for its other users
	resp, err := shared.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
}
