package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBMigratesAndPrepares(t *testing.T) {
	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	for _, name := range []string{"upsert_entry", "load_entries"} {
		stmt, err := db.Stmt(name)
		require.NoError(t, err, "statement %s", name)
		assert.NotNil(t, stmt)
	}

	_, err = db.Stmt("nonexistent")
	assert.Error(t, err)
}

func TestUpsertAndLoadRoundTrip(t *testing.T) {
	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	upsert, err := db.Stmt("upsert_entry")
	require.NoError(t, err)

	now := time.Now()
	_, err = upsert.Exec("user-1", "Mighty-Eco-Eagle-07", 42.5, `{"climate_change":40}`,
		"B", "Engineering", 1, now, now)
	require.NoError(t, err)

	// Second submit for the same user must update, not duplicate.
	_, err = upsert.Exec("user-1", "Mighty-Eco-Eagle-07", 38.0, `{"climate_change":35}`,
		"B+", "Engineering", 2, now, now)
	require.NoError(t, err)

	load, err := db.Stmt("load_entries")
	require.NoError(t, err)

	rows, err := load.Query()
	require.NoError(t, err)
	defer rows.Close()

	count := 0
	for rows.Next() {
		var userID, pseudonym, scoresJSON, grade, affiliation string
		var composite float64
		var sessions int
		var createdAt, updatedAt time.Time
		require.NoError(t, rows.Scan(&userID, &pseudonym, &composite, &scoresJSON,
			&grade, &affiliation, &sessions, &createdAt, &updatedAt))
		assert.Equal(t, "user-1", userID)
		assert.InDelta(t, 38.0, composite, 1e-9)
		assert.Equal(t, 2, sessions)
		count++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, 1, count)
}

func TestPoolStats(t *testing.T) {
	db, err := NewDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	stats := db.PoolStats()
	for _, key := range []string{"open_connections", "in_use", "idle", "wait_count", "wait_duration_ms"} {
		assert.Contains(t, stats, key)
	}
}
