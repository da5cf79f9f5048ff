package base

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	BootStatus string         `json:"bootStatus"`
	JobID      string         `json:"job_id"`
	Count      int            `json:"count"`
	Tags       []string       `json:"tags"`
	Extra      map[string]any `json:"extra,omitempty"`
}

func TestFormat(t *testing.T) {
	v := sample{BootStatus: "ready", JobID: "j1", Count: 1200000, Tags: []string{"a", "b"}}

	tests := []struct {
		format string
		want   string
	}{
		{
			format: FormatJSON,
			want: `{
  "bootStatus": "ready",
  "count": 1200000,
  "job_id": "j1",
  "tags": [
    "a",
    "b"
  ]
}`,
		},
		{
			format: FormatYAML,
			want: `bootStatus: ready
count: 1200000
job_id: j1
tags:
    - a
    - b`,
		},
		{
			format: FormatText,
			want: `Boot status: ready
Count: 1200000
Job id: j1
Tags:
  - a
  - b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Format(tt.format, v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_TextNested(t *testing.T) {
	got, err := Format(FormatText, map[string]any{
		"node":    map[string]any{"id": "n1"},
		"created": true,
		"results": []any{},
		"receipt": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, `Created: true
Node:
  Id: n1
Receipt: -
Results:
  (none)`, got)
}

func TestFormat_Unknown(t *testing.T) {
	_, err := Format("xml", map[string]any{})
	assert.Error(t, err)
}

func TestTextLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"bootStatus", "Boot status"},
		{"job_id", "Job id"},
		{"état", "État"},
		{"ñame", "Ñame"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := textLabel(tt.key)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormat_TextMultiByteKey(t *testing.T) {
	out, err := Format(FormatText, map[string]any{"état": "ok"})
	require.NoError(t, err)
	assert.Equal(t, "État: ok", out)
}
