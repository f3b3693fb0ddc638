package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) *BoltStore {
	t.Helper()
	store, err := OpenBolt(filepath.Join(t.TempDir(), "terminal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltReadMissingKey(t *testing.T) {
	store := newTestBolt(t)

	_, err := store.Read("state")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoltWriteRead(t *testing.T) {
	store := newTestBolt(t)

	require.NoError(t, store.Write("state", `{"orders":[]}`))
	value, err := store.Read("state")
	require.NoError(t, err)
	assert.Equal(t, `{"orders":[]}`, value)
}

func TestBoltWriteOverwrites(t *testing.T) {
	store := newTestBolt(t)

	require.NoError(t, store.Write("state", "old"))
	require.NoError(t, store.Write("state", "new"))

	value, err := store.Read("state")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminal.db")

	store, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, store.Write("state", "persisted"))
	require.NoError(t, store.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Read("state")
	require.NoError(t, err)
	assert.Equal(t, "persisted", value)
}
