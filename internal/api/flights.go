package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"meridian-air/flightdeck/internal/models/dtos/requests"
	"meridian-air/flightdeck/internal/models/entities"
	"meridian-air/flightdeck/internal/services"
)

// FlightHandlers exposes the flight query and mutation surface.
type FlightHandlers struct {
	svc *services.FlightService
}

func NewFlightHandlers(svc *services.FlightService) *FlightHandlers {
	return &FlightHandlers{svc: svc}
}

// List handles GET /api/v1/flights
func (h *FlightHandlers) List(w http.ResponseWriter, r *http.Request) {
	flights, err := h.svc.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &flights)
}

// GetByID handles GET /api/v1/flights/{id}
func (h *FlightHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid flight id")
		return
	}

	flight, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, flight)
}

// ByDeparture handles GET /api/v1/flights/departure/{airportCode}
func (h *FlightHandlers) ByDeparture(w http.ResponseWriter, r *http.Request) {
	flights, err := h.svc.ListByDepartureAirport(r.Context(), chi.URLParam(r, "airportCode"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &flights)
}

// ByArrival handles GET /api/v1/flights/arrival/{airportCode}
func (h *FlightHandlers) ByArrival(w http.ResponseWriter, r *http.Request) {
	flights, err := h.svc.ListByArrivalAirport(r.Context(), chi.URLParam(r, "airportCode"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &flights)
}

// Search handles GET /api/v1/flights/search?start=...&end=...
// Both bounds are required and inclusive on scheduled departure.
func (h *FlightHandlers) Search(w http.ResponseWriter, r *http.Request) {
	start, err := parseFlightTime(r.URL.Query().Get("start"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid or missing start parameter")
		return
	}
	end, err := parseFlightTime(r.URL.Query().Get("end"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid or missing end parameter")
		return
	}

	flights, err := h.svc.ListByDateRange(r.Context(), start, end)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &flights)
}

// ByStatus handles GET /api/v1/flights/status/{status}
func (h *FlightHandlers) ByStatus(w http.ResponseWriter, r *http.Request) {
	flights, err := h.svc.ListByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &flights)
}

// Create handles POST /api/v1/flights
func (h *FlightHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req requests.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flight, err := h.svc.Create(r.Context(), flightFromRequest(&req))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusCreated, flight)
}

// Update handles PUT /api/v1/flights/{id}. Path and body ids must agree;
// a mismatch is the client's error, not a store operation.
func (h *FlightHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid flight id")
		return
	}

	var req requests.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FlightID != 0 && req.FlightID != id {
		respondWithError(w, http.StatusBadRequest, "path and body flight ids do not match")
		return
	}
	req.FlightID = id

	flight, err := h.svc.Update(r.Context(), flightFromRequest(&req))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, flight)
}

// UpdateStatus handles PATCH /api/v1/flights/{id}/status
func (h *FlightHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid flight id")
		return
	}

	var req requests.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flight, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, flight)
}

// Delete handles DELETE /api/v1/flights/{id}
func (h *FlightHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid flight id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func flightFromRequest(req *requests.FlightRequest) *entities.Flight {
	return &entities.Flight{
		FlightID:           req.FlightID,
		FlightNo:           req.FlightNo,
		ScheduledDeparture: req.ScheduledDeparture,
		ScheduledArrival:   req.ScheduledArrival,
		DepartureAirport:   req.DepartureAirport,
		ArrivalAirport:     req.ArrivalAirport,
		AircraftCode:       req.AircraftCode,
		Status:             req.Status,
		ActualDeparture:    req.ActualDeparture,
		ActualArrival:      req.ActualArrival,
	}
}

// parseFlightTime accepts RFC3339 or a bare local datetime, matching the
// wall-clock schedule fields.
func parseFlightTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
