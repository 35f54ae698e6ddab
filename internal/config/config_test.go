package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.DatabaseURL != defaultDatabaseURL {
		t.Fatalf("expected default database url, got %s", cfg.DatabaseURL)
	}
	if cfg.Season != defaultSeason {
		t.Fatalf("expected default season %d, got %d", defaultSeason, cfg.Season)
	}
	if cfg.SiteURL != defaultSiteURL {
		t.Fatalf("expected default site url %s, got %s", defaultSiteURL, cfg.SiteURL)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != defaultService {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envDatabaseURL, "postgres://db.internal:5432/reggie")
	t.Setenv(envSeason, "2026")
	t.Setenv(envSiteURL, "https://staging.reggie.app")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envOtelEndpoint, "otel.internal:4318")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://db.internal:5432/reggie" {
		t.Fatalf("expected database url override, got %s", cfg.DatabaseURL)
	}
	if cfg.Season != 2026 {
		t.Fatalf("expected season 2026, got %d", cfg.Season)
	}
	if cfg.SiteURL != "https://staging.reggie.app" {
		t.Fatalf("expected site url override, got %s", cfg.SiteURL)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled")
	}
	if cfg.Metrics.OtlpEndpoint != "otel.internal:4318" {
		t.Fatalf("expected otlp endpoint override, got %s", cfg.Metrics.OtlpEndpoint)
	}
}

func TestLoadInvalidSeasonFallsBack(t *testing.T) {
	t.Setenv(envSeason, "not-a-year")

	cfg := Load()

	if cfg.Season != defaultSeason {
		t.Fatalf("expected default season on invalid value, got %d", cfg.Season)
	}
}
