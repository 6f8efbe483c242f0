// Package cmd - interactive session command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harleytans/reputigo-universal-calculator/core/engine"
	"github.com/harleytans/reputigo-universal-calculator/core/ui"
	"github.com/harleytans/reputigo-universal-calculator/internal/config"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
)

var sessionVertical string

// sessionCmd runs the line-oriented calculator
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive quote session",
	Long: `Start an interactive calculator reading commands from stdin.

Each vertical keeps what was entered for it when switching away and back.
The discount applies to every vertical. Type help inside the session for
the command list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		e, err := newEngine(false)
		if err != nil {
			return err
		}

		s := engine.NewSession(e)
		if sessionVertical != "" {
			if _, err := s.Select(sessionVertical); err != nil {
				return err
			}
		}
		if cfg.Quote.DiscountPercent > 0 {
			if _, err := s.SetDiscount(formatPercent(cfg.Quote.DiscountPercent)); err != nil {
				return err
			}
		}

		logging.Debug("session started", zap.String("session", s.ID()), zap.String("vertical", s.Active()))

		runner := ui.NewSessionRunner(newWriter(cmd), s, cfg.Quote.Currency, int32(cfg.Output.Decimals))
		return runner.Run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().StringVar(&sessionVertical, "vertical", "", "vertical to start on; default from config")
}
