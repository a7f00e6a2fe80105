package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jchantrell/displayfmt/internal/numfmt"
	"github.com/jchantrell/displayfmt/internal/render"
	"github.com/jchantrell/displayfmt/internal/utils"
	"github.com/spf13/cobra"
)

var (
	batchInput   string
	batchKind    string
	batchOutput  string
	batchWorkers int
	noProgress   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Format a file of values, one per line",
	Long: `Batch reads one value per line from a file (or stdin with --input -) and
formats every line with the chosen kind: date, short, fulltime, decimal or
compact. Lines are formatted concurrently and written in input order as
text, a table, JSON or YAML.

Lines that cannot be formatted are reported in the output and make the
command exit with an error once all lines are written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := render.ParseKind(batchKind)
		if err != nil {
			return err
		}

		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			workers = batchWorkers
		}
		if workers < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", workers)
		}

		values, err := readValues(cmd.InOrStdin(), batchInput)
		if err != nil {
			return err
		}

		slog.Info("Starting batch",
			"input", batchInput,
			"kind", kind,
			"values", len(values),
			"workers", workers)

		start := time.Now()
		progress := utils.NewProgress(len(values), string(kind), !noProgress)
		results := formatter.FormatAll(cmd.Context(), kind, values, workers, progress.Increment)
		progress.Finish()

		if err := render.WriteResults(cmd.OutOrStdout(), batchOutput, results); err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				slog.Debug("Value not formatted", "input", r.Input, "error", r.Err)
			}
		}

		elapsed := time.Since(start)
		rate := "n/a"
		if elapsed > 0 {
			rate = numfmt.ToCompact(float64(len(values))/elapsed.Seconds()) + "/s"
		}
		slog.Info("Batch complete",
			"values", len(values),
			"failed", failed,
			"elapsed", utils.Duration(elapsed),
			"rate", rate)

		if failed > 0 {
			return fmt.Errorf("%d of %d values could not be formatted", failed, len(values))
		}

		return nil
	},
}

func readValues(stdin io.Reader, path string) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		values = append(values, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return values, nil
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "-", "input file, '-' for stdin")
	batchCmd.Flags().StringVarP(&batchKind, "kind", "k", string(render.KindDate), "format kind (date, short, fulltime, decimal, compact)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", render.OutputText, "output format (text, table, json, yaml)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 4, "number of concurrent workers")
	batchCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable progress bar")
}
