package configparser

import (
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		Port        int    `env:"TEST_SERVER_PORT" default:"3003"`
		ServiceName string `env:"TEST_SERVICE_NAME" default:"analytics-service"`
	}
	Ingest struct {
		TripCount int           `env:"TEST_TRIP_COUNT" default:"1000"`
		Seed      int64         `env:"TEST_SEED" default:"42"`
		Timeout   time.Duration `env:"TEST_TIMEOUT" default:"30s"`
	}
	Debug    bool    `env:"TEST_DEBUG" default:"false"`
	Fraction float64 `env:"TEST_FRACTION" default:"0.5"`

	unexported string
}

func TestParseEnv_Defaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}

	if cfg.Server.Port != 3003 {
		t.Fatalf("port default: got %d", cfg.Server.Port)
	}
	if cfg.Server.ServiceName != "analytics-service" {
		t.Fatalf("service name default: got %q", cfg.Server.ServiceName)
	}
	if cfg.Ingest.TripCount != 1000 || cfg.Ingest.Seed != 42 {
		t.Fatalf("ingest defaults: %+v", cfg.Ingest)
	}
	if cfg.Ingest.Timeout != 30*time.Second {
		t.Fatalf("duration default: got %v", cfg.Ingest.Timeout)
	}
	if cfg.Debug || cfg.Fraction != 0.5 {
		t.Fatalf("scalar defaults: debug=%v fraction=%v", cfg.Debug, cfg.Fraction)
	}
}

func TestParseEnv_EnvOverridesDefault(t *testing.T) {
	t.Setenv("TEST_SERVER_PORT", "8080")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_TIMEOUT", "1m30s")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("port override: got %d", cfg.Server.Port)
	}
	if !cfg.Debug {
		t.Fatal("bool override not applied")
	}
	if cfg.Ingest.Timeout != 90*time.Second {
		t.Fatalf("duration override: got %v", cfg.Ingest.Timeout)
	}
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("TEST_SERVER_PORT", "not-a-number")

	var cfg testConfig
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected error for non-integer port")
	}
}

func TestParseEnv_RequiresStructPointer(t *testing.T) {
	var cfg testConfig
	if err := ParseEnv(cfg); err == nil {
		t.Fatal("expected error for non-pointer argument")
	}
}
