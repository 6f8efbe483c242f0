// Package cmd - verticals and describe commands
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// verticalsCmd lists every registered vertical
var verticalsCmd = &cobra.Command{
	Use:     "verticals",
	Aliases: []string{"list"},
	Short:   "List the priced verticals",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(false)
		if err != nil {
			return err
		}

		w := newWriter(cmd)
		w.Header("Verticals")

		table := w.NewTable("ID", "Title", "Fields")
		for _, ev := range e.Registry().All() {
			table.AddRow(ev.ID(), ev.Title(), strconv.Itoa(len(ev.Fields())))
		}
		table.Render()

		w.Println("")
		w.Info("%d verticals, pricing digest %s", table.Len(), e.Catalog().Digest())
		return nil
	},
}

// describeCmd prints the input schema of a vertical
var describeCmd = &cobra.Command{
	Use:   "describe <vertical>",
	Short: "Show the inputs of a vertical",
	Long: `Show every input of a vertical: its kind, default, minimum and, for
choices, the accepted values.

Examples:
  servicequote describe hvac
  servicequote describe pet-services`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(false)
		if err != nil {
			return err
		}

		ev, table, err := e.Describe(args[0])
		if err != nil {
			return err
		}

		w := newWriter(cmd)
		w.Header(fmt.Sprintf("%s (%s)", ev.Title(), ev.ID()))

		out := w.NewTable("Field", "Kind", "Default", "Min", "Options", "Label")
		for _, f := range ev.Fields() {
			floor := ""
			if f.Kind == vertical.KindCount {
				floor = strconv.FormatInt(f.Floor, 10)
			}
			options := strings.Join(vertical.Options(f, table), ", ")
			if f.OptionsPer != "" {
				options += " (by " + f.OptionsPer + ")"
			}
			out.AddRow(f.Name, f.Kind.String(), f.Default, floor, options, f.Label)
		}
		out.Render()

		if toggler, ok := ev.(vertical.AreaToggler); ok {
			w.Println("")
			w.Info("areas are in square feet; set %s=on to enter them in acres", toggler.AreaFlag())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verticalsCmd)
	rootCmd.AddCommand(describeCmd)
}
