package httputil

import (
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// InternalServerError logs err and answers with a fixed message, never with err's text.
func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	writeError(w, http.StatusBadRequest, msg)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	writeError(w, http.StatusNotFound, msg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	if err := WriteJSON(w, status, ErrorBody{Detail: msg}); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}
