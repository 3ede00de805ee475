package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"meridian-air/flightdeck/internal/bootstrap"
	"meridian-air/flightdeck/internal/common"
	"meridian-air/flightdeck/internal/db"
	"meridian-air/flightdeck/internal/db/repositories"
	"meridian-air/flightdeck/internal/logging"
	"meridian-air/flightdeck/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Flightdeck starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Relational store (airports, aircraft, flights) via GORM
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to relational store")

	// Weather time-series store via sqlx
	if err := db.InitWeatherStore(); err != nil {
		logging.Error("Failed to connect to weather store", "error", err.Error())
		log.Fatalf("Failed to connect to weather store: %v", err)
	}
	logging.Info("Connected to weather store")

	ctx := context.Background()

	if err := bootstrap.AutoMigrate(gormDB); err != nil {
		logging.Error("Failed to migrate relational schema", "error", err.Error())
		log.Fatalf("Failed to migrate relational schema: %v", err)
	}

	weatherRepo := repositories.NewWeatherRepository(db.WeatherDB)
	if err := weatherRepo.EnsureSchema(ctx); err != nil {
		logging.Error("Failed to provision weather table", "error", err.Error())
		log.Fatalf("Failed to provision weather table: %v", err)
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := bootstrap.SeedSampleData(ctx, gormDB, weatherRepo); err != nil {
			logging.Error("Failed to seed sample data", "error", err.Error())
		} else {
			logging.Info("Sample data seeded")
		}
	}

	// Cache backend: Redis when configured, in-memory otherwise
	var cache common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		cache = common.NewRedisCacheService(common.NewRedisClient())
	} else {
		cache = common.NewCacheService(300, 600)
	}
	defer cache.Close()

	upSince := time.Now()

	router := routes.RegisterRoutes(gormDB, db.WeatherDB, cache, upSince)

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	listenPort := os.Getenv("PORT")
	if listenPort == "" {
		listenPort = "8080"
	}

	logging.Info("Server starting",
		"port", listenPort,
		"environment", appEnv,
	)

	log.Fatal(http.ListenAndServe(":"+listenPort, mux))
}
