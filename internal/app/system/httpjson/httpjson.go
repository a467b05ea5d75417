// Package httpjson is the single place API responses are shaped. Every
// endpoint answers with the same envelope: {"success": bool, "message":
// string, ...extra fields}. Failures never escape a handler as anything
// but one of the writers below, which keeps the error taxonomy
// (unauthenticated / forbidden / not found / conflict / validation /
// server error) consistent across features.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Envelope is the common response shape clients decode first, before any
// endpoint-specific payload fields.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Fields carries endpoint payload alongside the envelope.
type Fields map[string]any

func write(w http.ResponseWriter, status int, success bool, message string, fields Fields) {
	body := make(map[string]any, len(fields)+2)
	body["success"] = success
	if message != "" {
		body["message"] = message
	}
	for k, v := range fields {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, fields Fields) {
	write(w, http.StatusOK, true, message, fields)
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, fields Fields) {
	write(w, http.StatusCreated, true, message, fields)
}

// Invalid writes a 400 validation failure.
func Invalid(w http.ResponseWriter, message string) {
	write(w, http.StatusBadRequest, false, message, nil)
}

// Unauthenticated writes a 401 failure (missing/invalid token or
// inactive user).
func Unauthenticated(w http.ResponseWriter, message string) {
	write(w, http.StatusUnauthorized, false, message, nil)
}

// Forbidden writes a 403 failure (authenticated, wrong role).
func Forbidden(w http.ResponseWriter, message string) {
	write(w, http.StatusForbidden, false, message, nil)
}

// NotFound writes a 404 failure.
func NotFound(w http.ResponseWriter, message string) {
	write(w, http.StatusNotFound, false, message, nil)
}

// Conflict writes a 409 failure (uniqueness violation).
func Conflict(w http.ResponseWriter, message string) {
	write(w, http.StatusConflict, false, message, nil)
}

// TooManyRequests writes a 429 failure (rate limited).
func TooManyRequests(w http.ResponseWriter, message string) {
	write(w, http.StatusTooManyRequests, false, message, nil)
}

// ServerError writes a 500 failure with a generic message. The real
// error goes to the log, never to the client.
func ServerError(w http.ResponseWriter, message string) {
	write(w, http.StatusInternalServerError, false, message, nil)
}

// Decode reads a JSON request body into dst. Unknown fields are ignored,
// matching the partial-update contract of the PUT endpoints.
func Decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
