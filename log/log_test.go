package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf, InfoLevel)
	l.Debug("hidden")
	l.Info("visible", String("key", "value"), Int("n", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.InDelta(t, 3, entry["n"], 0)
}

func TestWithFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	opt, err := WithFilter("*:session info+:*")
	require.NoError(t, err)
	l := New(buf, DebugLevel, opt)

	l.Named("source").Debug("dropped")
	l.Named("session").Debug("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithFilterInvalid(t *testing.T) {
	_, err := WithFilter("unknown:session")
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	l := New(&bytes.Buffer{}, InfoLevel).Named("ctx")
	assert.Same(t, l, GetFromContext(AddToContext(context.Background(), l)))
	assert.Same(t, Default(), GetFromContext(context.Background()))
}
