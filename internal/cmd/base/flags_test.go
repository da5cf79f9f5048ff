package base

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSet(t *testing.T) {
	var (
		tags  []string
		limit int
	)

	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.StringSliceVar(&tags, "tag", "Tag filter")
	f.IntVar(&limit, "limit", 10, "Maximum results")

	require.NoError(t, f.Parse([]string{"-tag", "a,b", "-tag", "c", "rest"}))
	assert.Equal(t, []string{"a", "b", "c"}, tags)
	assert.True(t, f.IsSet("tag"))
	assert.False(t, f.IsSet("limit"))
	assert.Equal(t, []string{"rest"}, f.Args())

	help := f.Help()
	assert.Contains(t, help, "-limit")
	assert.Contains(t, help, "(default: 10)")
	assert.Contains(t, help, "-tag")
}

func TestFlagSet_ParseErrorDoesNotExit(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	assert.Error(t, f.Parse([]string{"-nope"}))
}

func TestParseObject(t *testing.T) {
	obj, err := ParseObject("data", "")
	require.NoError(t, err)
	assert.Nil(t, obj)

	obj, err = ParseObject("data", `{}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, obj)

	obj, err = ParseObject("data", `{"label":"gravity"}`)
	require.NoError(t, err)
	assert.Equal(t, "gravity", obj["label"])

	_, err = ParseObject("data", `[1,2]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-data must be a JSON object")
}
