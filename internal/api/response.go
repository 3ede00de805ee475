package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"meridian-air/flightdeck/internal/logging"
	"meridian-air/flightdeck/internal/models/dtos/responses"
	"meridian-air/flightdeck/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithServiceError maps the service error taxonomy onto HTTP:
// NotFound -> 404, validation -> 400, anything else -> 500 unmodified.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	case services.IsValidation(err):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		logging.Error("Store operation failed", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, "store unavailable")
	}
}
