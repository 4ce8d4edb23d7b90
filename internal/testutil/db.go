package testutil

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/joestump/wordbook/internal/db"
	_ "modernc.org/sqlite"
)

// NewTestDB opens an in-memory SQLite DB and runs all goose migrations.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Use a file URI with shared cache so all pool connections share the
	// same in-memory database. Each test gets a unique name to avoid
	// cross-test interference.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := db.SQLiteDSN("file:" + name + "?mode=memory&cache=shared")
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	logger, _ := logtest.NewNullLogger()
	if err := db.Migrate(conn, "sqlite3", logger); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}
