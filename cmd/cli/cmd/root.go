// Package cmd provides the CLI commands for servicequote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harleytans/reputigo-universal-calculator/core/engine"
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/ui"
	"github.com/harleytans/reputigo-universal-calculator/internal/config"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
	"github.com/harleytans/reputigo-universal-calculator/verticals"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "servicequote",
	Short: "Estimate price ranges for home and property services",
	Long: `servicequote prices home-service jobs across 32 verticals, from house
cleaning to roofing to junk removal, and returns a low/high estimate.

Examples:
  servicequote estimate cleaning --set visit=monthly --set bedrooms=3
  servicequote estimate --path /industry/hvac-services --discount 10
  servicequote session`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Failures are reported through the logger with
// their error type.
func Execute() error {
	defer logging.Sync()

	err := rootCmd.Execute()
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if t := errors.TypeOf(err); t != "" {
			fields = append(fields, zap.String("type", string(t)))
		}
		logging.Error("command failed", fields...)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog returns the embedded tables, overlaid with the tables of
// Quote.TablesPath when set
func loadCatalog(cfg *config.Config) (*pricing.Catalog, error) {
	catalog, err := pricing.Default()
	if err != nil {
		return nil, err
	}
	if cfg.Quote.TablesPath == "" {
		return catalog, nil
	}

	override, err := pricing.LoadFile(cfg.Quote.TablesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing tables: %w", err)
	}
	logging.Debug("pricing tables overridden",
		zap.String("path", cfg.Quote.TablesPath),
		zap.Strings("verticals", override.IDs()),
	)
	return catalog.Merge(override).Freeze(), nil
}

// newEngine wires the registry and catalog from the global configuration
func newEngine(strict bool) (*engine.Engine, error) {
	cfg := config.Get()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	registry, err := verticals.NewRegistry()
	if err != nil {
		return nil, err
	}

	defaultVertical := cfg.Quote.DefaultVertical
	if _, ok := registry.Get(defaultVertical); !ok {
		logging.Warn("unknown default vertical, using fallback",
			zap.String("configured", defaultVertical),
			zap.String("fallback", verticals.DefaultVertical),
		)
		defaultVertical = verticals.DefaultVertical
	}

	return engine.NewEngine(registry, catalog, engine.Config{
		DefaultVertical: defaultVertical,
		Strict:          strict || cfg.Quote.Strict,
	}), nil
}

// newWriter creates a UI writer honoring output config and --verbose
func newWriter(cmd *cobra.Command) *ui.Writer {
	w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	if verbose {
		w.SetVerbosity(2)
	}
	return w
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "servicequote version %s\n", Version)
	},
}
