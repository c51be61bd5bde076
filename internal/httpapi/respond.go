package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	applog "github.com/autosave-dev/autosave/internal/log"
	"github.com/autosave-dev/autosave/internal/returns"
	"github.com/autosave-dev/autosave/internal/wire"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorBody(msg string, details []wire.FieldError) wire.ErrorResponse {
	return wire.ErrorResponse{Error: msg, Details: details}
}

// decodeBody reads a JSON request body into v. It writes the error response
// itself and reports whether the handler should continue.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if s.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), nil))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorBody("malformed JSON: "+err.Error(), nil))
		return false
	}
	return true
}

// writeError maps a decoding or engine error to a response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var schemaErr *wire.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("invalid request", schemaErr.Details))
	case errors.Is(err, returns.ErrUnknownMode):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error(), nil))
	default:
		applog.FromContext(r.Context()).Error("Request failed", applog.FieldError, err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error", nil))
	}
}
