// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SERVICEQUOTE_"

// FileName is the config file created in the home directory
const FileName = ".servicequote.json"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Quote contains quoting configuration
	Quote QuoteConfig `json:"quote"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// QuoteConfig contains quoting settings
type QuoteConfig struct {
	// DefaultVertical is active when a session starts
	DefaultVertical string `json:"default_vertical" env:"DEFAULT_VERTICAL"`

	// DiscountPercent is applied to every quote unless overridden
	DiscountPercent float64 `json:"discount_percent" env:"DISCOUNT_PERCENT"`

	// Currency of the pricing tables
	Currency types.Currency `json:"currency" env:"CURRENCY"`

	// TablesPath replaces embedded pricing tables with those of an HCL file
	TablesPath string `json:"tables_path,omitempty" env:"TABLES_PATH"`

	// Strict rejects choices missing from the pricing table
	Strict bool `json:"strict" env:"STRICT"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// Format is text or json
	Format string `json:"format" env:"OUTPUT_FORMAT"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color" env:"NO_COLOR"`

	// Decimals shown for amounts
	Decimals int `json:"decimals" env:"DECIMALS"`
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Quote: QuoteConfig{
			DefaultVertical: "cleaning",
			Currency:        types.CurrencyUSD,
		},
		Output: OutputConfig{
			Format:   FormatText,
			Decimals: 2,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.servicequote.json
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load loads configuration from a file. A missing file yields the
// defaults. Environment overrides are applied on top in both cases.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Config("invalid config file "+path, err)
		}
	case !os.IsNotExist(err):
		return nil, errors.Config("cannot read config file "+path, err)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides fields from SERVICEQUOTE_* variables. A .env file in
// the working directory is read first when present.
func (c *Config) ApplyEnv() error {
	// .env is optional
	_ = godotenv.Load()

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Config("invalid environment override", err)
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Quote.DiscountPercent < 0 || c.Quote.DiscountPercent > 100 {
		return errors.Newf(errors.TypeConfig, "discount_percent must be between 0 and 100, got %v", c.Quote.DiscountPercent)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Newf(errors.TypeConfig, "unknown output format: %q", c.Output.Format)
	}
	if c.Output.Decimals < 0 {
		return errors.Newf(errors.TypeConfig, "decimals must not be negative, got %d", c.Output.Decimals)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
