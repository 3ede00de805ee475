package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// WeatherDB is the sqlx handle backing the weather time-series store.
// It is a separate connection from the GORM handle so the two stores can
// point at different databases.
var WeatherDB *sqlx.DB

// InitWeatherStore connects to the weather database. WEATHER_PG_* vars
// take precedence; otherwise the relational store's PG_* settings are
// reused so a single-database deployment needs no extra config.
func InitWeatherStore() error {

	host := envOr("WEATHER_PG_HOST", os.Getenv("PG_HOST"))
	port := envOr("WEATHER_PG_PORT", os.Getenv("PG_PORT"))
	user := envOr("WEATHER_PG_USER", os.Getenv("PG_USER"))
	dbname := envOr("WEATHER_PG_DB", os.Getenv("PG_DB"))
	password := envOr("WEATHER_PG_PASSWORD", os.Getenv("PG_PASSWORD"))
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	var err error

	for i := 0; i < 10; i++ {
		WeatherDB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
