package migrations

// Auto-increment primary keys differ per database (AUTOINCREMENT for SQLite,
// SERIAL for PostgreSQL, AUTO_INCREMENT for MySQL), so the schema lives in a
// Go migration. AUTOINCREMENT on SQLite keeps ids from being reused after deletes.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateLanguagesWords, downCreateLanguagesWords)
}

func upCreateLanguagesWords(ctx context.Context, tx *sql.Tx) error {
	for _, ddl := range createLanguagesWordsStmts() {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create languages/words tables: %w", err)
		}
	}
	return nil
}

func downCreateLanguagesWords(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"words", "languages"} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			return err
		}
	}
	return nil
}

func createLanguagesWordsStmts() []string {
	switch dialect {
	case "postgres":
		return []string{
			`CREATE TABLE IF NOT EXISTS languages (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS words (
    id      SERIAL PRIMARY KEY,
    name    TEXT NOT NULL,
    means   TEXT NOT NULL,
    lang_id INTEGER NOT NULL REFERENCES languages (id) ON DELETE RESTRICT
)`,
			`CREATE INDEX IF NOT EXISTS words_lang_id_idx ON words (lang_id)`,
		}
	case "mysql":
		// InnoDB indexes the foreign key column itself.
		return []string{
			`CREATE TABLE IF NOT EXISTS languages (
    id   INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL
) ENGINE=InnoDB`,
			`CREATE TABLE IF NOT EXISTS words (
    id      INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name    VARCHAR(255) NOT NULL,
    means   TEXT NOT NULL,
    lang_id INT NOT NULL,
    CONSTRAINT words_lang_id_fk FOREIGN KEY (lang_id) REFERENCES languages (id) ON DELETE RESTRICT
) ENGINE=InnoDB`,
		}
	default: // sqlite3
		return []string{
			`CREATE TABLE IF NOT EXISTS languages (
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS words (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    name    TEXT NOT NULL,
    means   TEXT NOT NULL,
    lang_id INTEGER NOT NULL REFERENCES languages (id) ON DELETE RESTRICT
)`,
			`CREATE INDEX IF NOT EXISTS words_lang_id_idx ON words (lang_id)`,
		}
	}
}
