// Package cmd - estimate command
package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harleytans/reputigo-universal-calculator/core/discount"
	"github.com/harleytans/reputigo-universal-calculator/core/engine"
	"github.com/harleytans/reputigo-universal-calculator/internal/config"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
)

var (
	outputFormat  string
	setValues     []string
	discountRaw   string
	strictChoices bool
	landingPath   string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [vertical]",
	Short: "Estimate a price range for one vertical",
	Long: `Price one vertical from its defaults plus any --set overrides.

The vertical is given as an argument or resolved from a landing page path
with --path. Without either, the configured default vertical is used.

Examples:
  servicequote estimate cleaning --set visit=monthly --set bedrooms=3 --set bathrooms=2
  servicequote estimate lawn-care --set mowing=on --set mowing-area=10000
  servicequote estimate --path /industry/junk-removal --set volume=half --format json
  servicequote estimate roofing --strict --set material=slate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json); default from config")
	estimateCmd.Flags().StringArrayVarP(&setValues, "set", "s", nil, "field value as name=value (repeatable)")
	estimateCmd.Flags().StringVarP(&discountRaw, "discount", "d", "", "discount percent 0-100; default from config")
	estimateCmd.Flags().BoolVar(&strictChoices, "strict", false, "reject choices missing from the pricing table")
	estimateCmd.Flags().StringVar(&landingPath, "path", "", "landing page path such as /industry/hvac")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	e, err := newEngine(strictChoices)
	if err != nil {
		return err
	}

	id := e.Config().DefaultVertical
	switch {
	case len(args) > 0:
		id = args[0]
	case landingPath != "":
		id = e.ResolvePath(landingPath)
	}

	inputs, err := parseSetValues(setValues)
	if err != nil {
		return err
	}

	pct := decimal.NewFromFloat(cfg.Quote.DiscountPercent)
	if cmd.Flags().Changed("discount") {
		pct = discount.Parse(discountRaw)
	}

	logging.Debug("estimating", zap.String("vertical", id), zap.Int("inputs", len(inputs)))

	q, err := e.Estimate(cmd.Context(), &engine.EstimateRequest{
		Vertical:        id,
		Inputs:          inputs,
		DiscountPercent: pct,
		Strict:          strictChoices,
	})
	if err != nil {
		if errors.IsType(err, errors.TypeNotFound) {
			newWriter(cmd).Info("run 'servicequote verticals' to list supported verticals")
		}
		return fmt.Errorf("failed to estimate %s: %w", id, err)
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.Format
	}
	places := int32(cfg.Output.Decimals)

	w := newWriter(cmd)
	switch format {
	case config.FormatJSON:
		return w.QuoteJSON(q, cfg.Quote.Currency, places)
	case config.FormatText:
		w.DisplayQuote(q, cfg.Quote.Currency, places)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// parseSetValues splits name=value pairs. Later pairs win.
func parseSetValues(values []string) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for _, kv := range values {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", kv)
		}
		out[name] = value
	}
	return out, nil
}
