package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "db", "history.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Record("install", true))
	require.NoError(t, db.Record("uninstall", false))

	entries, err := db.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byAction := map[string]Entry{}
	for _, entry := range entries {
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
		byAction[entry.Action] = entry
	}
	assert.True(t, byAction["install"].Succeeded)
	assert.False(t, byAction["uninstall"].Succeeded)
}

func TestListEmpty(t *testing.T) {
	db := openTestDB(t)

	entries, err := db.List(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListHonorsLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Record("install", true))
	}

	entries, err := db.List(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.sqlite")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Record("install", true))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	entries, err := db.List(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
