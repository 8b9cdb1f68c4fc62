package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/olivergarza/soccer-rpg/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgInvalidRequest = "Invalid request. Please check your inputs."
	ErrMsgItemNotFound   = "Item not found"
	ErrMsgPlayerNotFound = "Player not found"
	ErrMsgServerError    = "Server error occurred. Please try again."
)

// respondServiceError maps domain errors to HTTP status codes and
// user-facing messages. Storage faults stay server errors; missing
// entities become client errors.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
	case errors.Is(err, domain.ErrPlayerNotFound):
		respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
	default:
		respondError(w, http.StatusInternalServerError, ErrMsgServerError)
	}
}
