// Package cmd - convert command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/harleytans/reputigo-universal-calculator/core/units"
)

// convertCmd converts an area between square feet and acres
var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert an area between square feet and acres",
	Long: `Convert an area the way the lawn care toggle does: square feet to acres
keeps two decimals, acres to square feet rounds to a whole number.

Examples:
  servicequote convert 10000 sqft acres
  servicequote convert 0.5 acres sqft`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[0], err)
		}
		from, err := units.ParseUnit(args[1])
		if err != nil {
			return err
		}
		to, err := units.ParseUnit(args[2])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", units.Convert(value, from, to), to)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
