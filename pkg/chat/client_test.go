package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&apiclient.Config{BaseURL: server.URL + "/"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func readJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

func TestClient_Health(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"healthy","bootStatus":"ready","uptime":12,"governance":{"ok":true}}`))
	})

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"status":     "healthy",
		"bootStatus": "ready",
		"uptime":     float64(12),
		"governance": map[string]any{"ok": true},
	}, health)
}

func TestClient_StatusAndIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/status":
			w.Write([]byte(`{"uptime":12,"mode":"normal"}`))
		case "/api/identity":
			w.Write([]byte(`{"name":"mathison"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(12), status["uptime"])
	assert.Equal(t, "normal", status["mode"])

	identity, err := client.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mathison", identity["name"])
}

func TestClient_SendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/chat/send", r.URL.Path)
		assert.Equal(t, map[string]any{"content": "hello"}, readJSON(t, r))

		w.Write([]byte(`{
			"message": {"id":"m1","role":"assistant","content":"hi","timestamp":1700000000000},
			"stream_id": "s1"
		}`))
	})

	resp, err := client.SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "m1", resp.Message.ID)
	assert.Equal(t, RoleAssistant, resp.Message.Role)
	assert.Equal(t, int64(1700000000000), resp.Message.Timestamp)
	assert.Equal(t, int64(1700000000), resp.Message.Time().Unix())
	require.NotNil(t, resp.StreamID)
	assert.Equal(t, "s1", *resp.StreamID)
}

func TestClient_ChatHistory(t *testing.T) {
	tests := []struct {
		name      string
		opts      HistoryOptions
		wantQuery string
	}{
		{
			name:      "no options",
			opts:      HistoryOptions{},
			wantQuery: "",
		},
		{
			name:      "limit and offset",
			opts:      HistoryOptions{Limit: apiclient.Ptr(20), Offset: apiclient.Ptr(40)},
			wantQuery: "limit=20&offset=40",
		},
		{
			name:      "zero offset is sent",
			opts:      HistoryOptions{Offset: apiclient.Ptr(0)},
			wantQuery: "offset=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/chat/history", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				w.Write([]byte(`{"messages":[{"id":"m1","role":"user","content":"hello","timestamp":1}],"total":1,"limit":50,"offset":0}`))
			})

			resp, err := client.ChatHistory(context.Background(), tt.opts)
			require.NoError(t, err)
			require.Len(t, resp.Messages, 1)
			assert.Equal(t, RoleUser, resp.Messages[0].Role)
			assert.Equal(t, 1, resp.Total)
		})
	}
}

func TestClient_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"beam not found"}`))
	})

	beam, err := client.GetBeam(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, beam)
	assert.True(t, errors.Is(err, apiclient.ErrRequestFailed))
	assert.Contains(t, err.Error(), "failed to get beam")

	code, ok := apiclient.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestClient_DecodeMismatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"beam_id":"b1","tags":"not-a-list"}`))
	})

	_, err := client.GetBeam(context.Background(), "b1")
	require.Error(t, err)

	var decodeErr *apiclient.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.False(t, errors.Is(err, apiclient.ErrRequestFailed))
}

func TestClient_ScopedCloseAfterFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(&apiclient.Config{BaseURL: server.URL})
	require.NoError(t, err)

	func() {
		defer client.Close()
		_, err := client.Status(context.Background())
		require.Error(t, err)
	}()

	_, err = client.Status(context.Background())
	assert.True(t, errors.Is(err, apiclient.ErrClientClosed))
}
