package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joestump/wordbook/internal/metrics"
)

var (
	// ErrNotFound is returned when a keyed update or delete matched no row.
	ErrNotFound = errors.New("not found")

	// ErrConstraint is wrapped by UnexpectedError when the database rejected
	// a statement on a foreign key or unique constraint.
	ErrConstraint = errors.New("constraint violation")

	// ErrLanguageInUse is wrapped by UnexpectedError when a language still owns words.
	ErrLanguageInUse = errors.New("language still has words")
)

// UnexpectedError is any storage failure other than ErrNotFound: lost
// connections, constraint violations, malformed queries.
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: unexpected storage error: %v", e.Op, e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnexpected reports whether err is (or wraps) an *UnexpectedError.
func IsUnexpected(err error) bool {
	var ue *UnexpectedError
	return errors.As(err, &ue)
}

// LanguageStoreIface exposes language operations.
// Handlers never touch the database directly; all access goes through this interface.
type LanguageStoreIface interface {
	AddLanguage(ctx context.Context, payload AddLanguage) (*Language, error)
	ListLanguages(ctx context.Context) ([]*Language, error)
	UpdateLanguage(ctx context.Context, id int64, payload UpdateLanguage) (*Language, error)
	DeleteLanguage(ctx context.Context, id int64) error
}

// WordStoreIface exposes word operations, always scoped to the owning language.
type WordStoreIface interface {
	AddWord(ctx context.Context, langID int64, payload AddWord) (*Word, error)
	ListWords(ctx context.Context, langID int64) ([]*Word, error)
	UpdateWord(ctx context.Context, langID, id int64, payload UpdateWord) (*Word, error)
	DeleteWord(ctx context.Context, langID, id int64) error
}

// Repository is a backend serving both languages and words.
type Repository interface {
	LanguageStoreIface
	WordStoreIface
}

// unexpected wraps err as an *UnexpectedError for op and counts it.
func unexpected(op string, err error) error {
	if isForeignKeyError(err) || isUniqueConstraintError(err) {
		err = fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	metrics.StoreErrorsTotal.WithLabelValues("unexpected").Inc()
	return &UnexpectedError{Op: op, Err: err}
}

// notFound counts and returns ErrNotFound.
func notFound() error {
	metrics.StoreErrorsTotal.WithLabelValues("not_found").Inc()
	return ErrNotFound
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") // SQLite, PostgreSQL & MySQL
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
