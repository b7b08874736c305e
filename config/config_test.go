package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ASSETCONSOLE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.API.BaseURL != "http://localhost:3000/api" {
		t.Errorf("API.BaseURL = %q", c.API.BaseURL)
	}
	if c.Auth.LoginPath != "/login" {
		t.Errorf("Auth.LoginPath = %q", c.Auth.LoginPath)
	}
	if c.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", c.Logging.Level)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	file := `
[api]
base_url = "https://console.example.com/api"

[auth]
login_path = "/signin"
seal_key = "4242424242424242424242424242424242424242424242424242424242424242"
`
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ASSETCONSOLE_CONFIG", path)
	t.Setenv("ASSETCONSOLE_LOGGING_LEVEL", "debug")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.API.BaseURL != "https://console.example.com/api" {
		t.Errorf("API.BaseURL = %q", c.API.BaseURL)
	}
	if c.Auth.LoginPath != "/signin" {
		t.Errorf("Auth.LoginPath = %q", c.Auth.LoginPath)
	}
	if len(c.Auth.SealKey) != 64 {
		t.Errorf("Auth.SealKey length = %d, want 64 hex chars", len(c.Auth.SealKey))
	}
	// env overrides file and defaults
	if c.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", c.Logging.Level)
	}
}
