// Package httpx provides the JSON response envelope shared by API handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope wraps every API result. A failed envelope always carries Message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK sends a successful envelope carrying data.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// Message sends a successful envelope without payload.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: true, Message: message})
}

// Fail sends a failed envelope.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// Unauthorized answers requests without a resolvable identity. The body shape
// predates the envelope and API clients depend on it.
func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
