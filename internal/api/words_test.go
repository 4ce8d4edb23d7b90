package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/joestump/wordbook/internal/store"
)

func TestWords_Add_Created(t *testing.T) {
	env := newTestEnv(t)
	l := seedLanguage(t, env, "Spanish")

	rec := env.do(t, "POST", fmt.Sprintf("/languages/%d", l.ID), `{"name":"hola","means":"hello"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var w store.Word
	if err := json.NewDecoder(rec.Body).Decode(&w); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := store.Word{ID: 1, Name: "hola", Means: "hello", LangID: l.ID}
	if w != want {
		t.Errorf("word = %+v, want %+v", w, want)
	}
}

func TestWords_Add_UnknownLanguage(t *testing.T) {
	env := newSQLTestEnv(t)

	rec := env.do(t, "POST", "/languages/42", `{"name":"hola","means":"hello"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestWords_Add_MissingMeans(t *testing.T) {
	env := newTestEnv(t)
	l := seedLanguage(t, env, "Spanish")
	path := fmt.Sprintf("/languages/%d", l.ID)

	for _, body := range []string{`{"name":"hola"}`, `{"means":"hello"}`, `{"name":"hola","means":""}`} {
		rec := env.do(t, "POST", path, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("POST %s: status = %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("POST %s: body = %q, want empty", body, rec.Body.String())
		}
	}

	words, err := env.Repo.ListWords(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("ListWords: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("words = %+v, want none stored", words)
	}
}

func TestWords_Update_MissingMeans(t *testing.T) {
	env := newTestEnv(t)
	l := seedLanguage(t, env, "Spanish")
	w := seedWord(t, env, l.ID, "hola", "hello")

	rec := env.do(t, "PATCH", fmt.Sprintf("/languages/%d/%d", l.ID, w.ID), `{"name":"adiós"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	words, err := env.Repo.ListWords(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("ListWords: %v", err)
	}
	if len(words) != 1 || *words[0] != *w {
		t.Errorf("words = %+v, want %+v unchanged", words, *w)
	}
}

func TestWords_List_ScopedToLanguage(t *testing.T) {
	env := newTestEnv(t)
	es := seedLanguage(t, env, "Spanish")
	fr := seedLanguage(t, env, "French")
	hola := seedWord(t, env, es.ID, "hola", "hello")
	seedWord(t, env, fr.ID, "bonjour", "hello")
	adios := seedWord(t, env, es.ID, "adiós", "goodbye")

	rec := env.do(t, "GET", fmt.Sprintf("/languages/%d", es.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var words []store.Word
	if err := json.NewDecoder(rec.Body).Decode(&words); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(words) != 2 || words[0] != *adios || words[1] != *hola {
		t.Errorf("words = %+v, want [%+v %+v]", words, *adios, *hola)
	}
}

func TestWords_List_StoreFailure(t *testing.T) {
	env := newEnvWith(t, brokenRepo{})

	rec := env.do(t, "GET", "/languages/1", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestWords_Update_OK(t *testing.T) {
	env := newTestEnv(t)
	l := seedLanguage(t, env, "Spanish")
	w := seedWord(t, env, l.ID, "ola", "wave")

	rec := env.do(t, "PATCH", fmt.Sprintf("/languages/%d/%d", l.ID, w.ID), `{"name":"hola","means":"hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var got store.Word
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := store.Word{ID: w.ID, Name: "hola", Means: "hello", LangID: l.ID}
	if got != want {
		t.Errorf("word = %+v, want %+v", got, want)
	}
}

func TestWords_Update_WrongLanguage(t *testing.T) {
	env := newTestEnv(t)
	es := seedLanguage(t, env, "Spanish")
	fr := seedLanguage(t, env, "French")
	w := seedWord(t, env, es.ID, "hola", "hello")

	rec := env.do(t, "PATCH", fmt.Sprintf("/languages/%d/%d", fr.ID, w.ID), `{"name":"salut","means":"hi"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestWords_Update_NonIntegerWordID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "PATCH", "/languages/1/hola", `{"name":"hola","means":"hello"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWords_Delete_WrongLanguage(t *testing.T) {
	env := newTestEnv(t)
	es := seedLanguage(t, env, "Spanish")
	fr := seedLanguage(t, env, "French")
	w := seedWord(t, env, es.ID, "hola", "hello")

	rec := env.do(t, "DELETE", fmt.Sprintf("/languages/%d/%d", fr.ID, w.ID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec = env.do(t, "GET", fmt.Sprintf("/languages/%d", es.ID), "")
	var words []store.Word
	if err := json.NewDecoder(rec.Body).Decode(&words); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(words) != 1 || words[0].ID != w.ID {
		t.Errorf("words = %+v, want word %d still listed", words, w.ID)
	}
}

func TestWords_Delete_StoreFailure(t *testing.T) {
	env := newEnvWith(t, brokenRepo{})

	rec := env.do(t, "DELETE", "/languages/1/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
