package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/joestump/wordbook/internal/store"
)

// languagesHandler serves the language collection and language resources.
type languagesHandler struct {
	store store.LanguageStoreIface
	log   logrus.FieldLogger
}

func registerLanguageRoutes(r chi.Router, s store.LanguageStoreIface, log logrus.FieldLogger) {
	h := &languagesHandler{store: s, log: log}
	r.Get("/languages", h.List)
	r.Post("/languages", h.Add)
	r.Patch("/languages/{lang_id}", h.Update)
	r.Delete("/languages/{lang_id}", h.Delete)
}

// List returns all languages, newest first.
// GET /languages
//
// @Summary      List languages
// @Tags         Languages
// @Produce      json
// @Success      200  {array}  store.Language
// @Failure      500
// @Router       /languages [get]
func (h *languagesHandler) List(w http.ResponseWriter, r *http.Request) {
	langs, err := h.store.ListLanguages(r.Context())
	if err != nil {
		writeListError(w, h.log, "list languages", err)
		return
	}
	writeJSON(w, http.StatusOK, langs)
}

// Add creates a language.
// POST /languages
//
// @Summary      Add a language
// @Tags         Languages
// @Accept       json
// @Produce      json
// @Param        body  body      store.AddLanguage  true  "Language to create"
// @Success      201   {object}  store.Language
// @Failure      400
// @Failure      404
// @Router       /languages [post]
func (h *languagesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var payload store.AddLanguage
	if !decodeBody(w, r, &payload) || !requireFields(w, payload.Name) {
		return
	}

	lang, err := h.store.AddLanguage(r.Context(), payload)
	if err != nil {
		writeMutationError(w, h.log, "add language", err)
		return
	}
	writeJSON(w, http.StatusCreated, lang)
}

// Update renames a language.
// PATCH /languages/{lang_id}
//
// @Summary      Update a language
// @Tags         Languages
// @Accept       json
// @Produce      json
// @Param        lang_id  path      int                    true  "Language ID"
// @Param        body     body      store.UpdateLanguage  true  "New name"
// @Success      200      {object}  store.Language
// @Failure      400
// @Failure      404
// @Router       /languages/{lang_id} [patch]
func (h *languagesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "lang_id")
	if !ok {
		return
	}
	var payload store.UpdateLanguage
	if !decodeBody(w, r, &payload) || !requireFields(w, payload.Name) {
		return
	}

	lang, err := h.store.UpdateLanguage(r.Context(), id, payload)
	if err != nil {
		writeMutationError(w, h.log, "update language", err)
		return
	}
	writeJSON(w, http.StatusOK, lang)
}

// Delete removes a language. Languages that still own words are not deleted.
// DELETE /languages/{lang_id}
//
// @Summary      Delete a language
// @Tags         Languages
// @Param        lang_id  path  int  true  "Language ID"
// @Success      204
// @Failure      400
// @Failure      404
// @Router       /languages/{lang_id} [delete]
func (h *languagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "lang_id")
	if !ok {
		return
	}

	if err := h.store.DeleteLanguage(r.Context(), id); err != nil {
		writeMutationError(w, h.log, "delete language", err)
		return
	}
	writeStatus(w, http.StatusNoContent)
}
