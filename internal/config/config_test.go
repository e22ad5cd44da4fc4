package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	if got := Default().TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %v, want 0.02", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"empty grid", func(c *Config) { c.InvaderFiles = 0 }},
		{"inverted bomb range", func(c *Config) { c.BombMinVelocity = 60; c.BombMaxVelocity = 40 }},
		{"no fire rate", func(c *Config) { c.RocketMaxFireRate = 0 }},
		{"no lives", func(c *Config) { c.InitialLives = 0 }},
		{"no game area", func(c *Config) { c.GameWidth = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected %s to be rejected", tc.name)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.json")
	if err := os.WriteFile(path, []byte(`{"fps": 60, "invaderRanks": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 60 || cfg.InvaderRanks != 3 {
		t.Errorf("overrides not applied: fps=%d ranks=%d", cfg.FPS, cfg.InvaderRanks)
	}
	if cfg.InvaderFiles != 10 || cfg.PointsPerInvader != 5 {
		t.Errorf("defaults lost: files=%d points=%d", cfg.InvaderFiles, cfg.PointsPerInvader)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"fps": "fast"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed file")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"fps": -1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected error for invalid values")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Error("empty path should return defaults")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("INVADERS_TEST_BOOL", "true")
	t.Setenv("INVADERS_TEST_INT", "42")
	t.Setenv("INVADERS_TEST_BAD", "nope")

	if !GetEnvBool("INVADERS_TEST_BOOL", false) {
		t.Error("GetEnvBool should parse true")
	}
	if GetEnvBool("INVADERS_TEST_BAD", false) {
		t.Error("GetEnvBool should fall back on malformed values")
	}
	if got := GetEnvInt64("INVADERS_TEST_INT", 0); got != 42 {
		t.Errorf("GetEnvInt64 = %d, want 42", got)
	}
	if got := GetEnvInt64("INVADERS_TEST_UNSET", 7); got != 7 {
		t.Errorf("GetEnvInt64 fallback = %d, want 7", got)
	}
	if got := GetEnv("INVADERS_TEST_UNSET", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q", got)
	}
}
