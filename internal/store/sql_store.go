package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	languageColumns = `id, name`
	wordColumns     = `id, name, means, lang_id`
)

// SQLStore is the sqlx-backed implementation of LanguageStoreIface and
// WordStoreIface. It is safe for concurrent use; all state lives in the pool.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *SQLStore) q(query string) string { return s.db.Rebind(query) }

// returning reports whether the driver supports INSERT/UPDATE ... RETURNING.
// MySQL does not; those writes fall back to a statement plus a read inside one transaction.
func (s *SQLStore) returning() bool { return s.db.DriverName() != "mysql" }

func (s *SQLStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// classify maps a raw database error onto ErrNotFound or *UnexpectedError.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, ErrNotFound):
		return notFound()
	default:
		return unexpected(op, err)
	}
}

// execKeyed runs a keyed DELETE and reports ErrNotFound when no row matched.
func (s *SQLStore) execKeyed(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, s.q(query), args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLanguage inserts a language and returns the stored row.
func (s *SQLStore) AddLanguage(ctx context.Context, payload AddLanguage) (*Language, error) {
	var l Language
	var err error
	if s.returning() {
		err = s.db.GetContext(ctx, &l, s.q(`
			INSERT INTO languages (name) VALUES (?) RETURNING `+languageColumns), payload.Name)
	} else {
		err = s.withTx(ctx, func(tx *sqlx.Tx) error {
			result, err := tx.ExecContext(ctx, s.q(`INSERT INTO languages (name) VALUES (?)`), payload.Name)
			if err != nil {
				return err
			}
			id, err := result.LastInsertId()
			if err != nil {
				return err
			}
			return tx.GetContext(ctx, &l, s.q(`SELECT `+languageColumns+` FROM languages WHERE id = ?`), id)
		})
	}
	if err != nil {
		return nil, classify("add language", err)
	}
	return &l, nil
}

// ListLanguages returns all languages, newest first.
func (s *SQLStore) ListLanguages(ctx context.Context) ([]*Language, error) {
	langs := []*Language{}
	err := s.db.SelectContext(ctx, &langs, `SELECT `+languageColumns+` FROM languages ORDER BY id DESC`)
	if err != nil {
		return nil, classify("list languages", err)
	}
	return langs, nil
}

// UpdateLanguage replaces the name of language id, or returns ErrNotFound.
func (s *SQLStore) UpdateLanguage(ctx context.Context, id int64, payload UpdateLanguage) (*Language, error) {
	var l Language
	var err error
	if s.returning() {
		err = s.db.GetContext(ctx, &l, s.q(`
			UPDATE languages SET name = ? WHERE id = ? RETURNING `+languageColumns), payload.Name, id)
	} else {
		err = s.withTx(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, s.q(`UPDATE languages SET name = ? WHERE id = ?`), payload.Name, id); err != nil {
				return err
			}
			// RowsAffected is 0 on MySQL when the name is unchanged, so existence is checked by re-reading.
			return tx.GetContext(ctx, &l, s.q(`SELECT `+languageColumns+` FROM languages WHERE id = ?`), id)
		})
	}
	if err != nil {
		return nil, classify("update language", err)
	}
	return &l, nil
}

// DeleteLanguage removes language id. A language that still owns words is
// rejected by the foreign key and reported as an UnexpectedError wrapping ErrLanguageInUse.
func (s *SQLStore) DeleteLanguage(ctx context.Context, id int64) error {
	err := s.execKeyed(ctx, `DELETE FROM languages WHERE id = ?`, id)
	if isForeignKeyError(err) {
		err = fmt.Errorf("%w: %w", ErrLanguageInUse, err)
	}
	return classify("delete language", err)
}

// AddWord inserts a word owned by langID and returns the stored row.
// An unknown langID violates the foreign key and surfaces as an UnexpectedError.
func (s *SQLStore) AddWord(ctx context.Context, langID int64, payload AddWord) (*Word, error) {
	var w Word
	var err error
	if s.returning() {
		err = s.db.GetContext(ctx, &w, s.q(`
			INSERT INTO words (name, means, lang_id) VALUES (?, ?, ?) RETURNING `+wordColumns),
			payload.Name, payload.Means, langID)
	} else {
		err = s.withTx(ctx, func(tx *sqlx.Tx) error {
			result, err := tx.ExecContext(ctx, s.q(`INSERT INTO words (name, means, lang_id) VALUES (?, ?, ?)`),
				payload.Name, payload.Means, langID)
			if err != nil {
				return err
			}
			id, err := result.LastInsertId()
			if err != nil {
				return err
			}
			return tx.GetContext(ctx, &w, s.q(`SELECT `+wordColumns+` FROM words WHERE id = ?`), id)
		})
	}
	if err != nil {
		return nil, classify("add word", err)
	}
	return &w, nil
}

// ListWords returns the words of langID, newest first. An unknown langID yields an empty list.
func (s *SQLStore) ListWords(ctx context.Context, langID int64) ([]*Word, error) {
	words := []*Word{}
	err := s.db.SelectContext(ctx, &words, s.q(`
		SELECT `+wordColumns+` FROM words WHERE lang_id = ? ORDER BY id DESC`), langID)
	if err != nil {
		return nil, classify("list words", err)
	}
	return words, nil
}

// UpdateWord replaces name and meaning of word id. The word must belong to
// langID; a word reached through another language's path is ErrNotFound.
func (s *SQLStore) UpdateWord(ctx context.Context, langID, id int64, payload UpdateWord) (*Word, error) {
	var w Word
	var err error
	if s.returning() {
		err = s.db.GetContext(ctx, &w, s.q(`
			UPDATE words SET name = ?, means = ? WHERE id = ? AND lang_id = ? RETURNING `+wordColumns),
			payload.Name, payload.Means, id, langID)
	} else {
		err = s.withTx(ctx, func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, s.q(`UPDATE words SET name = ?, means = ? WHERE id = ? AND lang_id = ?`),
				payload.Name, payload.Means, id, langID)
			if err != nil {
				return err
			}
			return tx.GetContext(ctx, &w, s.q(`SELECT `+wordColumns+` FROM words WHERE id = ? AND lang_id = ?`), id, langID)
		})
	}
	if err != nil {
		return nil, classify("update word", err)
	}
	return &w, nil
}

// DeleteWord removes word id from langID, or returns ErrNotFound.
func (s *SQLStore) DeleteWord(ctx context.Context, langID, id int64) error {
	err := s.execKeyed(ctx, `DELETE FROM words WHERE id = ? AND lang_id = ?`, id, langID)
	return classify("delete word", err)
}
