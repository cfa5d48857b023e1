package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

type TelemetryConfig struct {
	// OTLPEndpoint enables OTLP log export when set, e.g. "localhost:4318".
	OTLPEndpoint string `json:"otlp_endpoint"`
	Insecure     bool   `json:"insecure"`
	LogLevel     string `json:"log_level"` // debug, info, warn, error
}

func Load() (*Config, error) {
	// A local .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Addr: getEnvOrDefault("CASHCART_ADDR", ":8080"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:     os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
			LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
