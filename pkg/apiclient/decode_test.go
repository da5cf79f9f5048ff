package apiclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	ID        string         `json:"id"`
	Count     int64          `json:"count"`
	Score     float64        `json:"score"`
	Tags      []string       `json:"tags"`
	Note      *string        `json:"note,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Unchanged string         `json:"unchanged"`
}

func TestDecode(t *testing.T) {
	raw := map[string]any{
		"id":       "n1",
		"count":    float64(1700000000123),
		"score":    0.5,
		"tags":     []any{"b", "a"},
		"metadata": map[string]any{"k": "v"},
		"extra":    "ignored",
	}

	var out decodeTarget
	require.NoError(t, Decode(raw, &out))

	assert.Equal(t, "n1", out.ID)
	assert.Equal(t, int64(1700000000123), out.Count)
	assert.Equal(t, 0.5, out.Score)
	assert.Equal(t, []string{"b", "a"}, out.Tags)
	assert.Nil(t, out.Note)
	assert.Equal(t, map[string]any{"k": "v"}, out.Metadata)
}

func TestDecode_TypeMismatch(t *testing.T) {
	_, err := As[decodeTarget](map[string]any{"tags": "not-a-list-of-strings", "id": 42.0})

	require.Error(t, err)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Contains(t, decodeErr.Target, "decodeTarget")
	assert.False(t, errors.Is(err, ErrRequestFailed))
}

func TestDecode_Nil(t *testing.T) {
	out, err := As[map[string]any](nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestFuture(t *testing.T) {
	var exec Executor

	f := Submit(&exec, context.Background(), func(ctx context.Context) (string, error) {
		return "done", nil
	})

	value, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", value)

	select {
	case <-f.Done():
	default:
		t.Fatal("Done channel should be closed after Await returns")
	}
}

func TestFuture_AwaitContextCancelled(t *testing.T) {
	var exec Executor
	release := make(chan struct{})

	f := Submit(&exec, context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	value, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestExecutor_DrainWaitsForInFlight(t *testing.T) {
	var exec Executor
	release := make(chan struct{})
	finished := make(chan struct{})

	Submit(&exec, context.Background(), func(ctx context.Context) (struct{}, error) {
		<-release
		close(finished)
		return struct{}{}, nil
	})

	drained := make(chan struct{})
	go func() {
		exec.Drain()
		close(drained)
	}()

	select {
	case <-drained:
		t.Fatal("Drain returned before the call finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-drained

	select {
	case <-finished:
	default:
		t.Fatal("call should have finished before Drain returned")
	}
}
