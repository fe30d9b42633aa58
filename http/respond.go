package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"fin-calc/domain"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies; every valid body is a few hundred bytes.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		requestLogger(r).WithError(err).Error("Error encoding response")
		writeError(w, r, domain.InvalidInput("result could not be encoded"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		requestLogger(r).WithError(err).Warn("Error writing response")
	}
}

// writeError answers 400 with {"error": message}. Every failure a
// calculation can produce is reported as invalid input.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	entry := requestLogger(r).WithField("path", r.URL.Path)
	if domain.IsInvalidInput(err) {
		entry.WithField("reason", err.Error()).Warn("Rejected invalid input")
	} else {
		entry.WithError(err).Error("Unexpected calculation error")
	}

	body, _ := json.Marshal(errorResponse{Error: err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	w.Write(append(body, '\n'))
}

func limitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
}

// requestLogger returns the entry stored by RequestLogging, or the standard
// logger when the handler runs without it.
func requestLogger(r *http.Request) *logrus.Entry {
	if entry, ok := r.Context().Value(loggerKey{}).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
