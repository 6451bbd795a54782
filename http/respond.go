package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"commute-agent/logger"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, log logger.Logger, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("encoding response", nil)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("writing response", nil)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, status int, msg string, fields map[string]string) {
	writeJSON(w, log, status, errorResponse{Error: msg, Fields: fields})
}
