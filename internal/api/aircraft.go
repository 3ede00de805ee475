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

// AircraftHandlers exposes plain CRUD over the aircraft reference store.
type AircraftHandlers struct {
	repo  *repositories.AircraftRepository
	cache common.CacheInterface
}

func NewAircraftHandlers(repo *repositories.AircraftRepository, cache common.CacheInterface) *AircraftHandlers {
	return &AircraftHandlers{repo: repo, cache: cache}
}

// List handles GET /api/v1/aircraft
func (h *AircraftHandlers) List(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.repo.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &aircraft)
}

// Get handles GET /api/v1/aircraft/{code}
func (h *AircraftHandlers) Get(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.repo.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if aircraft == nil {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}
	respondWithSuccess(w, http.StatusOK, aircraft)
}

// Put handles PUT /api/v1/aircraft/{code}
func (h *AircraftHandlers) Put(w http.ResponseWriter, r *http.Request) {
	var aircraft entities.Aircraft
	if err := json.NewDecoder(r.Body).Decode(&aircraft); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	aircraft.AircraftCode = chi.URLParam(r, "code")

	if err := h.repo.Put(r.Context(), &aircraft); err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.cache.Delete(string(constants.CachePrefixAircraft) + aircraft.AircraftCode)

	respondWithSuccess(w, http.StatusOK, &aircraft)
}

// Delete handles DELETE /api/v1/aircraft/{code}
func (h *AircraftHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.repo.Delete(r.Context(), code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "not found")
			return
		}
		respondWithServiceError(w, err)
		return
	}

	h.cache.Delete(string(constants.CachePrefixAircraft) + code)

	w.WriteHeader(http.StatusNoContent)
}
