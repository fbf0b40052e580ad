package trace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	tr, err := New(path)
	require.NoError(t, err)
	require.NotEmpty(t, tr.SessionID())

	require.NoError(t, tr.Emit("input", "key pressed", map[string]any{"key": "q"}))
	require.NoError(t, tr.Emit("frame", "", nil))
	require.NoError(t, tr.Close())

	events, err := Read(path)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "input", events[0].Kind)
	assert.Equal(t, "key pressed", events[0].Message)
	assert.Equal(t, "q", events[0].Fields["key"])
	assert.Equal(t, "frame", events[1].Kind)
	for _, ev := range events {
		assert.Equal(t, tr.SessionID(), ev.SessionID)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestTracerAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Emit("start", "", nil))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	require.NoError(t, second.Emit("start", "", nil))
	require.NoError(t, second.Close())

	events, err := Read(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.NotEqual(t, events[0].SessionID, events[1].SessionID)
}

func TestNilTracerDiscards(t *testing.T) {
	var tr *Tracer
	assert.NoError(t, tr.Emit("anything", "", nil))
	assert.NoError(t, tr.Close())
	assert.Empty(t, tr.SessionID())
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}
