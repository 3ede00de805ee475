package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"meridian-air/flightdeck/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck and pings both backing
// stores.
func HealthCheckHandler(weatherDB *sqlx.DB, relationalDB *gorm.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		wxStatus := "ok"
		wxDetails := "Weather store connected"
		if err := weatherDB.Ping(); err != nil {
			wxStatus = "down"
			wxDetails = err.Error()
		}
		services["weather_store"] = entities.ServiceStatus{
			Status:  wxStatus,
			Details: wxDetails,
		}

		pgStatus := "ok"
		pgDetails := "Relational store connected"
		if sqlDB, err := relationalDB.DB(); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["relational_store"] = entities.ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
