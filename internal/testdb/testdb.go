// Package testdb provides helpers for tests that run against a real
// PostgreSQL instance. Tests using it skip themselves when no test database
// is configured, so the unit test suite stays runnable without one.
package testdb

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// URL returns the test database URL. CLIENTBOOK_TEST_DATABASE_URL takes
// precedence over DATABASE_URL; an empty string means no database is
// configured.
func URL() string {
	if url := os.Getenv("CLIENTBOOK_TEST_DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// Open connects to the test database and brings its schema up to date,
// skipping the test when no database is configured. The connection is closed
// automatically when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := URL()
	if url == "" {
		t.Skip("no test database configured, set CLIENTBOOK_TEST_DATABASE_URL or DATABASE_URL")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping(), "failed to ping test database")

	migrate(t, db)
	return db
}

// WithTx runs fn inside a transaction that is rolled back when the test
// finishes, keeping tests isolated from each other.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// migrate applies the migrations from the repository's migrations directory.
func migrate(t *testing.T, db *sql.DB) {
	t.Helper()

	root, err := findModuleRoot()
	require.NoError(t, err, "failed to find module root")

	migrationsDir := filepath.Join(root, "migrations")
	require.DirExists(t, migrationsDir)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, migrationsDir), "failed to run migrations")
}

// findModuleRoot walks up from the working directory to the directory
// containing go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
