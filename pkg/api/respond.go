package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/chartpress/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeUnsupportedKind:
		return http.StatusBadRequest
	case errors.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with err. Client errors carry their own message; server
// errors get summary as the message and the cause as details (in full only
// when debug is set).
func writeError(w http.ResponseWriter, err error, summary string, debug bool) {
	status := StatusCode(err)
	body := errorBody{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
		Field: errors.GetField(err),
	}
	if body.Code == "" {
		body.Code = string(errors.ErrCodeInternal)
	}
	if status >= http.StatusInternalServerError {
		body.Error = summary
		body.Details = errors.UserMessage(err)
		if debug {
			body.Details = err.Error()
		}
	}
	writeJSON(w, status, body)
}

func writeBinary(w http.ResponseWriter, contentType string, data []byte) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
