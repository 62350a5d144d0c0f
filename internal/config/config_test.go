package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/johnwards/temple/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TEMPLE_ADDR", "TEMPLE_DB", "TEMPLE_AUTH_TOKEN", "TEMPLE_LOG_LEVEL", "TEMPLE_ENV"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DBPath != "temple.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "temple.db")
	}
	if cfg.AuthToken != "" {
		t.Errorf("AuthToken = %q, want empty", cfg.AuthToken)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Production() {
		t.Error("Production() = true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEMPLE_ADDR", ":9090")
	t.Setenv("TEMPLE_DB", "/tmp/test.db")
	t.Setenv("TEMPLE_AUTH_TOKEN", "secret-token")
	t.Setenv("TEMPLE_LOG_LEVEL", "debug")
	t.Setenv("TEMPLE_ENV", "production")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/test.db")
	}
	if cfg.AuthToken != "secret-token" {
		t.Errorf("AuthToken = %q, want %q", cfg.AuthToken, "secret-token")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.Production() {
		t.Error("Production() = false, want true")
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	_ = os.Unsetenv("TEMPLE_DB")
	t.Setenv("TEMPLE_ADDR", ":7070")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TEMPLE_DB=from-file.db\nTEMPLE_ADDR=:1111\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	cfg := config.Load(path)

	if cfg.DBPath != "from-file.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "from-file.db")
	}
	// The environment wins over the file.
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":7070")
	}
}
