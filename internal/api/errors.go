package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/joestump/wordbook/internal/store"
)

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStatus writes an empty-bodied response. No error payload is ever returned.
func writeStatus(w http.ResponseWriter, status int) {
	w.Header().Del("Content-Type")
	w.WriteHeader(status)
}

// writeMutationError logs a failed add, update or delete and answers 404.
// Both NotFound and Unexpected collapse to 404 here; the store keeps them
// apart so a stricter mapping only has to change this function.
func writeMutationError(w http.ResponseWriter, log logrus.FieldLogger, op string, err error) {
	entry := log.WithError(err).WithField("op", op)
	if store.IsUnexpected(err) {
		entry.Error("store failure")
	} else {
		entry.Info("no matching record")
	}
	writeStatus(w, http.StatusNotFound)
}

// writeListError logs a failed list and answers 500.
func writeListError(w http.ResponseWriter, log logrus.FieldLogger, op string, err error) {
	log.WithError(err).WithField("op", op).Error("store failure")
	writeStatus(w, http.StatusInternalServerError)
}

// pathID parses the integer path parameter name. It writes 400 and returns
// false when the parameter is not an integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeStatus(w, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// decodeBody decodes a single JSON value from the request body into v. It
// writes 400 and returns false on malformed or oversized input, or when
// anything but whitespace follows the value.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil || dec.More() {
		writeStatus(w, http.StatusBadRequest)
		return false
	}
	return true
}

// requireFields writes 400 and returns false when any of values is blank.
func requireFields(w http.ResponseWriter, values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			writeStatus(w, http.StatusBadRequest)
			return false
		}
	}
	return true
}
