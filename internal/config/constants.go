package config

const (
	envPort         = "PORT"
	envDatabaseURL  = "DATABASE_URL"
	envSeason       = "SEASON"
	envSiteURL      = "SITE_URL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultDatabaseURL = "postgres://localhost:5432/reggie?sslmode=disable"
	defaultSeason      = 2025
	defaultSiteURL     = "https://reggie.app"
	defaultMetricsPort = "9090"
	defaultService     = "reggie-api"
)
