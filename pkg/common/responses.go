package common

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the envelope used by endpoints that report a human-readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope used by endpoints that report a failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondMessage sends a {"message": ...} response
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Message: message})
}

// RespondError sends an {"error": ...} response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// ExtractRequestID extracts the request ID from the request headers
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Amzn-Trace-Id"); id != "" {
		return id
	}
	return ""
}
