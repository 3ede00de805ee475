package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"meridian-air/flightdeck/internal/api"
	"meridian-air/flightdeck/internal/common"
	"meridian-air/flightdeck/internal/db/repositories"
	"meridian-air/flightdeck/internal/logging"
	"meridian-air/flightdeck/internal/metrics"
	"meridian-air/flightdeck/internal/middleware"
	"meridian-air/flightdeck/internal/services"
)

// RegisterRoutes assembles the router, middleware stack and handler
// dependencies.
func RegisterRoutes(relationalDB *gorm.DB, weatherDB *sqlx.DB, cache common.CacheInterface, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(weatherDB, relationalDB, upSince))

	// repositories and services
	airportRepo := repositories.NewAirportRepository(relationalDB)
	aircraftRepo := repositories.NewAircraftRepository(relationalDB)
	weatherRepo := repositories.NewWeatherRepository(weatherDB)

	flightSvc := services.NewFlightService(relationalDB, cache, metricsReg)
	weatherSvc := services.NewWeatherService(weatherRepo, metricsReg)

	flightHandlers := api.NewFlightHandlers(flightSvc)
	airportHandlers := api.NewAirportHandlers(airportRepo, cache)
	aircraftHandlers := api.NewAircraftHandlers(aircraftRepo, cache)
	weatherHandlers := api.NewWeatherHandlers(weatherSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/flights", func(r chi.Router) {
			r.Get("/", flightHandlers.List)
			r.Post("/", flightHandlers.Create)
			r.Get("/search", flightHandlers.Search)
			r.Get("/departure/{airportCode}", flightHandlers.ByDeparture)
			r.Get("/arrival/{airportCode}", flightHandlers.ByArrival)
			r.Get("/status/{status}", flightHandlers.ByStatus)
			r.Get("/{id}", flightHandlers.GetByID)
			r.Put("/{id}", flightHandlers.Update)
			r.Patch("/{id}/status", flightHandlers.UpdateStatus)
			r.Delete("/{id}", flightHandlers.Delete)
		})

		r.Route("/airports", func(r chi.Router) {
			r.Get("/", airportHandlers.List)
			r.Get("/{code}", airportHandlers.Get)
			r.Put("/{code}", airportHandlers.Put)
			r.Delete("/{code}", airportHandlers.Delete)
		})

		r.Route("/aircraft", func(r chi.Router) {
			r.Get("/", aircraftHandlers.List)
			r.Get("/{code}", aircraftHandlers.Get)
			r.Put("/{code}", aircraftHandlers.Put)
			r.Delete("/{code}", aircraftHandlers.Delete)
		})

		r.Route("/weather", func(r chi.Router) {
			r.Post("/", weatherHandlers.Save)
			r.Get("/{locationId}", weatherHandlers.Range)
			r.Get("/{locationId}/current", weatherHandlers.Recent)
			r.Get("/{locationId}/{timestamp}", weatherHandlers.Get)
		})
	})

	return r
}
