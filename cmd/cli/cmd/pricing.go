// Package cmd - pricing table inspection commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/internal/config"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Inspect pricing tables",
	Long: `Inspect the pricing tables quotes are computed from.

The tables are embedded in the binary. A replacement HCL file can be named
with quote.tables_path in the config file or SERVICEQUOTE_TABLES_PATH; its
verticals replace the embedded ones.`,
}

var pricingShowCmd = &cobra.Command{
	Use:   "show <vertical>",
	Short: "Print every rate of a vertical",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(config.Get())
		if err != nil {
			return err
		}
		t, ok := catalog.Table(args[0])
		if !ok {
			return fmt.Errorf("no pricing table for %s", args[0])
		}

		w := newWriter(cmd)
		w.Header(t.Title())
		table := w.NewTable("Key", "Value")
		for _, e := range t.Entries() {
			table.AddRow(e.Path, e.Value)
		}
		table.Render()
		return nil
	},
}

var pricingDigestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Print the content digest of the active pricing tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(config.Get())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), catalog.Digest())
		return nil
	},
}

var pricingValidateCmd = &cobra.Command{
	Use:   "validate <file.hcl>",
	Short: "Check a replacement pricing document",
	Long: `Parse a pricing document and report its verticals, without using it.
Unknown verticals are reported as warnings since no evaluator would read
them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := pricing.LoadFile(args[0])
		if err != nil {
			return err
		}

		e, err := newEngine(false)
		if err != nil {
			return err
		}

		w := newWriter(cmd)
		for _, id := range catalog.IDs() {
			t, _ := catalog.Table(id)
			if _, ok := e.Registry().Get(id); !ok {
				w.Warning("%s: no such vertical, table ignored", id)
				continue
			}
			w.Success("%s: %d rates", id, len(t.Entries()))
		}
		w.Info("digest %s", catalog.Digest())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pricingCmd)
	pricingCmd.AddCommand(pricingShowCmd)
	pricingCmd.AddCommand(pricingDigestCmd)
	pricingCmd.AddCommand(pricingValidateCmd)
}
