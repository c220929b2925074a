package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response shape every proxy route returns.
// Success replies carry the payload under a resource-named key
// ("transfers", "booking", ...); failure replies carry a human-readable
// "error" string. "success" is always present.
type Envelope map[string]any

// SuccessEnvelope builds {"success": true, "<key>": payload}.
func SuccessEnvelope(key string, payload any) Envelope {
	return Envelope{
		"success": true,
		key:       payload,
	}
}

// ErrorEnvelope builds {"success": false, "error": message}.
func ErrorEnvelope(message string) Envelope {
	return Envelope{
		"success": false,
		"error":   message,
	}
}

// WriteJSON writes any payload as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, ErrorEnvelope(message))
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusUnauthorized, ErrorEnvelope(message))
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusInternalServerError, ErrorEnvelope(message))
}
