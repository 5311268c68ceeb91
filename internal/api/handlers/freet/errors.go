package freet

import (
	"encoding/json"
	"log"
	"net/http"

	"Fritter/internal/core/freets"
)

// APIError represents a JSON error response
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := APIError{
		Error:   errorType,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("ERROR: Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case freets.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case freets.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	default:
		log.Printf("ERROR: Freet service error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred while handling the request")
	}
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers already sent; log and move on.
		log.Printf("ERROR: Failed to encode response: %v", err)
	}
}
