package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"meridian-air/flightdeck/internal/common"
	"meridian-air/flightdeck/internal/constants"
	"meridian-air/flightdeck/internal/db/repositories"
	"meridian-air/flightdeck/internal/models/entities"
)

// AirportHandlers exposes plain CRUD over the airport reference store.
// No cross-validation happens here; the flight service consults this
// store, it is not a validator itself.
type AirportHandlers struct {
	repo  *repositories.AirportRepository
	cache common.CacheInterface
}

func NewAirportHandlers(repo *repositories.AirportRepository, cache common.CacheInterface) *AirportHandlers {
	return &AirportHandlers{repo: repo, cache: cache}
}

// List handles GET /api/v1/airports
func (h *AirportHandlers) List(w http.ResponseWriter, r *http.Request) {
	airports, err := h.repo.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &airports)
}

// Get handles GET /api/v1/airports/{code}
func (h *AirportHandlers) Get(w http.ResponseWriter, r *http.Request) {
	airport, err := h.repo.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if airport == nil {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}
	respondWithSuccess(w, http.StatusOK, airport)
}

// Put handles PUT /api/v1/airports/{code}
func (h *AirportHandlers) Put(w http.ResponseWriter, r *http.Request) {
	var airport entities.Airport
	if err := json.NewDecoder(r.Body).Decode(&airport); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	airport.AirportCode = chi.URLParam(r, "code")

	if err := h.repo.Put(r.Context(), &airport); err != nil {
		respondWithServiceError(w, err)
		return
	}

	// Cached existence may be stale after a replace
	h.cache.Delete(string(constants.CachePrefixAirport) + airport.AirportCode)

	respondWithSuccess(w, http.StatusOK, &airport)
}

// Delete handles DELETE /api/v1/airports/{code}
func (h *AirportHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.repo.Delete(r.Context(), code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}
		respondWithServiceError(w, err)
		return
	}

	h.cache.Delete(string(constants.CachePrefixAirport) + code)

	w.WriteHeader(http.StatusNoContent)
}
