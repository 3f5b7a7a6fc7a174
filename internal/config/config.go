package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// OpenTelemetry metrics export (empty endpoint disables export)
	OTELEndpoint    string
	OTELServiceName string
}

func Load() Config {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ajir.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./ajir.log"
	}
	svc := os.Getenv("OTEL_SERVICE_NAME")
	if svc == "" {
		svc = "ajir"
	}

	cfg := Config{
		Port:            port,
		DBDSN:           dsn,
		LogFile:         logFile,
		OTELEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTELServiceName: svc,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s OTEL_ENDPOINT=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.OTELEndpoint)
	return cfg
}
