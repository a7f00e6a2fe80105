package main

import (
	"fmt"
	"log/slog"

	"github.com/jchantrell/displayfmt/internal/render"
	"github.com/spf13/cobra"
)

var dateCmd = &cobra.Command{
	Use:   "date [timestamp...]",
	Short: "Render server timestamps in local time",
	Long: `Date shifts each timestamp from the server clock to local time and prints it
using the configured layout:

  full      DD/MM/YYYY HH:MM:SS
  short     DD/MM HH:MM
  fulltime  DD/MM HH:MM:SS

Timestamps may be epoch milliseconds or date-times such as
"2024-03-05 10:07:09". Empty arguments print an empty line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := render.KindForLayout(layout)
		slog.Debug("Rendering dates", "count", len(args), "layout", layout.String())

		for _, raw := range args {
			out, err := formatter.Format(kind, raw)
			if err != nil {
				return fmt.Errorf("rendering %q: %w", raw, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
}
