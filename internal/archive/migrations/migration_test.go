package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	t.Run("should create the intervals table", func(t *testing.T) {
		db := openTestDB(t)

		require.NoError(t, RunMigrations(db))

		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='intervals'`).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, "intervals", name)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		db := openTestDB(t)

		require.NoError(t, RunMigrations(db))
		require.NoError(t, RunMigrations(db))

		var count int
		err := db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected int
	}{
		{name: "should parse a padded version", filename: "000001_create_intervals.up.sql", expected: 1},
		{name: "should reject a missing version", filename: "create_intervals.up.sql", expected: 0},
		{name: "should reject a non-numeric prefix", filename: "abc_create.up.sql", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVersion(tt.filename))
		})
	}
}
