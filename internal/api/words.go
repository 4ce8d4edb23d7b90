package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/joestump/wordbook/internal/store"
)

// wordsHandler serves the words of a single language.
type wordsHandler struct {
	store store.WordStoreIface
	log   logrus.FieldLogger
}

func registerWordRoutes(r chi.Router, s store.WordStoreIface, log logrus.FieldLogger) {
	h := &wordsHandler{store: s, log: log}
	r.Get("/languages/{lang_id}", h.List)
	r.Post("/languages/{lang_id}", h.Add)
	r.Patch("/languages/{lang_id}/{id}", h.Update)
	r.Delete("/languages/{lang_id}/{id}", h.Delete)
}

// List returns the words of a language, newest first.
// GET /languages/{lang_id}
//
// @Summary      List words in a language
// @Tags         Words
// @Produce      json
// @Param        lang_id  path   int  true  "Language ID"
// @Success      200      {array}  store.Word
// @Failure      400
// @Failure      500
// @Router       /languages/{lang_id} [get]
func (h *wordsHandler) List(w http.ResponseWriter, r *http.Request) {
	langID, ok := pathID(w, r, "lang_id")
	if !ok {
		return
	}

	words, err := h.store.ListWords(r.Context(), langID)
	if err != nil {
		writeListError(w, h.log, "list words", err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

// Add creates a word in a language.
// POST /languages/{lang_id}
//
// @Summary      Add a word to a language
// @Tags         Words
// @Accept       json
// @Produce      json
// @Param        lang_id  path      int            true  "Language ID"
// @Param        body     body      store.AddWord  true  "Word to create"
// @Success      201      {object}  store.Word
// @Failure      400
// @Failure      404
// @Router       /languages/{lang_id} [post]
func (h *wordsHandler) Add(w http.ResponseWriter, r *http.Request) {
	langID, ok := pathID(w, r, "lang_id")
	if !ok {
		return
	}
	var payload store.AddWord
	if !decodeBody(w, r, &payload) || !requireFields(w, payload.Name, payload.Means) {
		return
	}

	word, err := h.store.AddWord(r.Context(), langID, payload)
	if err != nil {
		writeMutationError(w, h.log, "add word", err)
		return
	}
	writeJSON(w, http.StatusCreated, word)
}

// Update replaces a word's name and meaning.
// PATCH /languages/{lang_id}/{id}
//
// @Summary      Update a word
// @Tags         Words
// @Accept       json
// @Produce      json
// @Param        lang_id  path      int               true  "Language ID"
// @Param        id       path      int               true  "Word ID"
// @Param        body     body      store.UpdateWord  true  "New name and meaning"
// @Success      200      {object}  store.Word
// @Failure      400
// @Failure      404
// @Router       /languages/{lang_id}/{id} [patch]
func (h *wordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	langID, ok := pathID(w, r, "lang_id")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var payload store.UpdateWord
	if !decodeBody(w, r, &payload) || !requireFields(w, payload.Name, payload.Means) {
		return
	}

	word, err := h.store.UpdateWord(r.Context(), langID, id, payload)
	if err != nil {
		writeMutationError(w, h.log, "update word", err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}

// Delete removes a word from a language.
// DELETE /languages/{lang_id}/{id}
//
// @Summary      Delete a word
// @Tags         Words
// @Param        lang_id  path  int  true  "Language ID"
// @Param        id       path  int  true  "Word ID"
// @Success      204
// @Failure      400
// @Failure      404
// @Router       /languages/{lang_id}/{id} [delete]
func (h *wordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	langID, ok := pathID(w, r, "lang_id")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteWord(r.Context(), langID, id); err != nil {
		writeMutationError(w, h.log, "delete word", err)
		return
	}
	writeStatus(w, http.StatusNoContent)
}
