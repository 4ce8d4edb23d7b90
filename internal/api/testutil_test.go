package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/joestump/wordbook/internal/api"
	"github.com/joestump/wordbook/internal/store"
	"github.com/joestump/wordbook/internal/testutil"
)

const testOrigin = "http://localhost:8000"

// testEnv holds the router and the backend it was built on.
type testEnv struct {
	Router http.Handler
	Repo   store.Repository
}

// newTestEnv wires the full router over an in-memory backend.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newEnvWith(t, store.NewMemStore())
}

// newSQLTestEnv wires the full router over a migrated in-memory SQLite database.
func newSQLTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newEnvWith(t, store.NewSQLStore(testutil.NewTestDB(t)))
}

func newEnvWith(t *testing.T, repo store.Repository) *testEnv {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := api.NewRouter(api.Deps{
		Languages:  repo,
		Words:      repo,
		Logger:     logger,
		CORSOrigin: testOrigin,
	})
	return &testEnv{Router: router, Repo: repo}
}

// do sends a request through the router. body may be empty.
func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

func seedLanguage(t *testing.T, env *testEnv, name string) *store.Language {
	t.Helper()
	l, err := env.Repo.AddLanguage(context.Background(), store.AddLanguage{Name: name})
	if err != nil {
		t.Fatalf("seed language: %v", err)
	}
	return l
}

func seedWord(t *testing.T, env *testEnv, langID int64, name, means string) *store.Word {
	t.Helper()
	w, err := env.Repo.AddWord(context.Background(), langID, store.AddWord{Name: name, Means: means})
	if err != nil {
		t.Fatalf("seed word: %v", err)
	}
	return w
}

// brokenRepo fails every operation with an UnexpectedError, as a lost database connection would.
type brokenRepo struct{}

var errBroken = &store.UnexpectedError{Op: "test", Err: errors.New("connection refused")}

func (brokenRepo) AddLanguage(context.Context, store.AddLanguage) (*store.Language, error) {
	return nil, errBroken
}
func (brokenRepo) ListLanguages(context.Context) ([]*store.Language, error) { return nil, errBroken }
func (brokenRepo) UpdateLanguage(context.Context, int64, store.UpdateLanguage) (*store.Language, error) {
	return nil, errBroken
}
func (brokenRepo) DeleteLanguage(context.Context, int64) error { return errBroken }
func (brokenRepo) AddWord(context.Context, int64, store.AddWord) (*store.Word, error) {
	return nil, errBroken
}
func (brokenRepo) ListWords(context.Context, int64) ([]*store.Word, error) { return nil, errBroken }
func (brokenRepo) UpdateWord(context.Context, int64, int64, store.UpdateWord) (*store.Word, error) {
	return nil, errBroken
}
func (brokenRepo) DeleteWord(context.Context, int64, int64) error { return errBroken }
