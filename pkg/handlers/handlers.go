// Package handlers provides HTTP response utilities for JSON APIs.
// Every response is wrapped in an Envelope so clients can rely on a single
// body shape: {code, success, message, result}.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrMalformedBody is returned by DecodeJSON when the request body cannot be decoded.
var ErrMalformedBody = errors.New("malformed request body")

// Result is the payload of an Envelope.
// Each key names the data it carries, e.g. Result{"shows": list}.
type Result map[string]any

// Envelope is the uniform response body. Success is derived from Code.
type Envelope struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  Result `json:"result"`
}

// NewEnvelope builds an Envelope for status. A nil result encodes as null.
func NewEnvelope(status int, message string, result Result) Envelope {
	return Envelope{
		Code:    status,
		Success: status >= 200 && status < 300,
		Message: message,
		Result:  result,
	}
}

// Respond writes an enveloped JSON response using status as both the
// transport status and the envelope code.
func Respond(w http.ResponseWriter, status int, message string, result Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(NewEnvelope(status, message, result))
}

// OK writes a 200 response carrying result with an empty message.
func OK(w http.ResponseWriter, result Result) {
	Respond(w, http.StatusOK, "", result)
}

// Message writes a response with no result.
func Message(w http.ResponseWriter, status int, message string) {
	Respond(w, status, message, nil)
}

// RespondError logs err and writes it as the envelope message.
// Server errors log at error level; client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
	}
	Message(w, status, err.Error())
}

// DecodeJSON decodes the request body into dst, reading at most maxBytes.
// A non-positive maxBytes disables the limit.
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
