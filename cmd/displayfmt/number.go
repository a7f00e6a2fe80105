package main

import (
	"fmt"
	"log/slog"

	"github.com/jchantrell/displayfmt/internal/numfmt"
	"github.com/jchantrell/displayfmt/internal/render"
	"github.com/spf13/cobra"
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Expand or abbreviate numbers",
}

var decimalCmd = &cobra.Command{
	Use:   "decimal [number...]",
	Short: "Rewrite scientific notation as a plain decimal",
	Long: `Decimal expands numbers written in scientific notation, e.g. 1.5e-3 becomes
0.0015 and -2.5e2 becomes -250. Other values are printed unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printNumbers(cmd, render.KindDecimal, args)
	},
}

var compactCmd = &cobra.Command{
	Use:   "compact [number...]",
	Short: "Abbreviate large numbers with k, M and G suffixes",
	Long: `Compact rounds numbers of 1000 and above to the nearest whole thousand (k),
million (M) or billion (G). Smaller numbers are printed unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printNumbers(cmd, render.KindCompact, args)
	},
}

var thresholdCmd = &cobra.Command{
	Use:   "threshold",
	Short: "Print the largest number that is never abbreviated",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), numfmt.FloatToDecimal(numfmt.MinCompactNumber()))
	},
}

func printNumbers(cmd *cobra.Command, kind render.Kind, args []string) error {
	slog.Debug("Rendering numbers", "kind", kind, "count", len(args))

	for _, raw := range args {
		out, err := formatter.Format(kind, raw)
		if err != nil {
			return fmt.Errorf("rendering %q: %w", raw, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(numberCmd)
	numberCmd.AddCommand(decimalCmd)
	numberCmd.AddCommand(compactCmd)
	numberCmd.AddCommand(thresholdCmd)
}
