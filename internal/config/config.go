package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	DatabaseURL string
	Season      int
	SiteURL     string
	Metrics     MetricsConfig
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		DatabaseURL: envOrDefault(envDatabaseURL, defaultDatabaseURL),
		Season:      intEnvOrDefault(envSeason, defaultSeason),
		SiteURL:     envOrDefault(envSiteURL, defaultSiteURL),
		Metrics:     loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultService),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
