package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iho/goexpense/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EXPENSE_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("METRICS_TEXTFILE", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.ExpenseFile != "expenses.json" {
		t.Fatalf("expected default expense file, got %q", cfg.ExpenseFile)
	}

	if cfg.LogLevel != "warn" || cfg.LogFormat != "console" {
		t.Fatalf("unexpected logging defaults: level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.MetricsTextfile != "" {
		t.Fatalf("expected metrics textfile to be disabled, got %q", cfg.MetricsTextfile)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EXPENSE_FILE", "/tmp/spending.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_TEXTFILE", "/tmp/expense.prom")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.ExpenseFile != "/tmp/spending.json" {
		t.Fatalf("expected expense file override, got %s", cfg.ExpenseFile)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected logging overrides, got level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.MetricsTextfile != "/tmp/expense.prom" {
		t.Fatalf("expected metrics textfile override, got %s", cfg.MetricsTextfile)
	}
}

func TestLoadDotEnv(t *testing.T) {
	// godotenv only fills variables that are absent, not ones set to "".
	t.Setenv("EXPENSE_FILE", "")
	_ = os.Unsetenv("EXPENSE_FILE")
	t.Setenv("LOG_LEVEL", "error")

	dotenv := filepath.Join(t.TempDir(), ".env")
	content := "EXPENSE_FILE=from-dotenv.json\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(dotenv, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write dotenv: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("EXPENSE_FILE") })

	cfg, err := config.Load(dotenv)
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.ExpenseFile != "from-dotenv.json" {
		t.Fatalf("expected expense file from dotenv, got %s", cfg.ExpenseFile)
	}

	// Real environment wins over the dotenv file.
	if cfg.LogLevel != "error" {
		t.Fatalf("expected environment to take precedence, got %s", cfg.LogLevel)
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}

func TestLoadInvalidFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for invalid log format")
	}
}
