package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Quote.DefaultVertical != "cleaning" {
		t.Errorf("expected cleaning, got %s", cfg.Quote.DefaultVertical)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("expected text output, got %s", cfg.Output.Format)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Quote.DefaultVertical = "hvac"
	cfg.Quote.DiscountPercent = 12.5
	cfg.Output.Decimals = 0
	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Quote.DefaultVertical != "hvac" {
		t.Errorf("expected hvac, got %s", loaded.Quote.DefaultVertical)
	}
	if loaded.Quote.DiscountPercent != 12.5 {
		t.Errorf("expected 12.5, got %v", loaded.Quote.DiscountPercent)
	}
	if loaded.Output.Decimals != 0 {
		t.Errorf("expected 0 decimals, got %d", loaded.Output.Decimals)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVICEQUOTE_DISCOUNT_PERCENT", "15")
	t.Setenv("SERVICEQUOTE_LOG_LEVEL", "debug")
	t.Setenv("SERVICEQUOTE_OUTPUT_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Quote.DiscountPercent != 15 {
		t.Errorf("expected 15, got %v", cfg.Quote.DiscountPercent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Logging.Level)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected json, got %s", cfg.Output.Format)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR for malformed file, got %v", err)
	}

	t.Setenv("SERVICEQUOTE_DISCOUNT_PERCENT", "lots")
	if _, err := Load(filepath.Join(dir, "absent.json")); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR for bad override, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"full discount", func(c *Config) { c.Quote.DiscountPercent = 100 }, true},
		{"negative discount", func(c *Config) { c.Quote.DiscountPercent = -1 }, false},
		{"discount above 100", func(c *Config) { c.Quote.DiscountPercent = 101 }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, false},
		{"negative decimals", func(c *Config) { c.Output.Decimals = -2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	original := Get()
	defer Set(original)

	cfg := Default()
	cfg.Quote.DefaultVertical = "roofing"
	Set(cfg)

	if Get().Quote.DefaultVertical != "roofing" {
		t.Errorf("expected roofing, got %s", Get().Quote.DefaultVertical)
	}
}
