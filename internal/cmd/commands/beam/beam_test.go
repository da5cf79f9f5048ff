package beam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
)

func TestLifecycleCommand_PartialFailure(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()

		if r.URL.Path == "/api/beams/missing/pin" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"pinned":true,"beam_id":"` + strings.Split(r.URL.Path, "/")[3] + `"}`))
	}))
	defer server.Close()

	ui := cli.NewMockUi()
	cmd := &LifecycleCommand{Command: base.NewTestCommand(ui), Action: ActionPin}

	code := cmd.Run([]string{"-address", server.URL, "b1", "missing", "b2"})
	assert.Equal(t, 1, code)

	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &out))
	assert.Equal(t, map[string]map[string]any{
		"b1": {"pinned": true, "beam_id": "b1"},
		"b2": {"pinned": true, "beam_id": "b2"},
	}, out)

	errOut := ui.ErrorWriter.String()
	assert.Contains(t, errOut, "1 error occurred")
	assert.Contains(t, errOut, "missing:")

	mu.Lock()
	defer mu.Unlock()
	sort.Strings(paths)
	assert.Equal(t, []string{
		"POST /api/beams/b1/pin",
		"POST /api/beams/b2/pin",
		"POST /api/beams/missing/pin",
	}, paths)
}

func TestLifecycleCommand_Unpin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/beams/b1/pin", r.URL.Path)
		w.Write([]byte(`{"pinned":false}`))
	}))
	defer server.Close()

	ui := cli.NewMockUi()
	cmd := &LifecycleCommand{Command: base.NewTestCommand(ui), Action: ActionUnpin}

	assert.Equal(t, 0, cmd.Run([]string{"-address", server.URL, "b1"}))
	assert.Empty(t, ui.ErrorWriter.String())
}

func TestLifecycleCommand_NoIDs(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &LifecycleCommand{Command: base.NewTestCommand(ui), Action: ActionRetire}

	assert.Equal(t, cli.RunResultHelp, cmd.Run(nil))
	assert.Contains(t, ui.ErrorWriter.String(), "at least one beam id")
}

func TestQueryCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, []string{"a", "b"}, q["tags"])
		assert.Equal(t, "true", q.Get("include_dead"))
		assert.False(t, q.Has("limit"))
		assert.False(t, q.Has("text"))
		w.Write([]byte(`{"beams":[{"beam_id":"b1","kind":"note","title":"First","tags":["a"],"body":"","status":"active","pinned":false,"updated_at_ms":1}],"total":1}`))
	}))
	defer server.Close()

	ui := cli.NewMockUi()
	cmd := &QueryCommand{Command: base.NewTestCommand(ui)}

	code := cmd.Run([]string{"-address", server.URL, "-format", "yaml", "-tag", "a", "-tag", "b", "-include-dead"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "beam_id: b1")
	assert.Contains(t, ui.OutputWriter.String(), "total: 1")
}

func TestUpdateCommand_ClearTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, map[string]any{"tags": []any{}}, payload)
		w.Write([]byte(`{"beam_id":"b1","kind":"note","title":"First","tags":[],"body":"","status":"active","pinned":false,"updated_at_ms":1}`))
	}))
	defer server.Close()

	ui := cli.NewMockUi()
	cmd := &UpdateCommand{Command: base.NewTestCommand(ui)}

	code := cmd.Run([]string{"-address", server.URL, "-clear-tags", "b1"})
	assert.Equal(t, 0, code, ui.ErrorWriter.String())
}
