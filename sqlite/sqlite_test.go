package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wikidex/wikidex/sqlite"
)

// setupTestDB creates an in-memory database for testing.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify the records table exists by querying it
		var count int
		err = db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM records").Scan(&count)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})
}
