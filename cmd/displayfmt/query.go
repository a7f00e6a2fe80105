package main

import (
	"fmt"
	"log/slog"

	"github.com/jchantrell/displayfmt/internal/database"
	"github.com/jchantrell/displayfmt/internal/render"
	"github.com/spf13/cobra"
)

var (
	dbPath          string
	listTables      bool
	dateColumns     []string
	shortColumns    []string
	fullTimeColumns []string
	decimalColumns  []string
	compactColumns  []string
)

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run a SQLite query and format selected columns",
	Long: `Query runs a read-only SQL query against a SQLite database and prints the
result as a table. Columns named with the --*-columns flags are rendered
with the matching formatter; the rest are printed as stored.

Example:
  displayfmt query -d events.db --date-columns created_at \
    --compact-columns views "SELECT id, created_at, views FROM events"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path := cfg.Database
		if cmd.Flags().Changed("database") {
			path = dbPath
		}

		db, err := database.NewDatabase(database.DefaultDatabaseOptions(path))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		if listTables {
			slog.Debug("Listing available tables", "database", path)

			names, err := db.ListTables(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Available tables:")
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("no query provided, use --tables to list tables")
		}

		kinds := render.ColumnKinds{}
		kinds.Add(render.KindDate, dateColumns...)
		kinds.Add(render.KindShort, shortColumns...)
		kinds.Add(render.KindFullTime, fullTimeColumns...)
		kinds.Add(render.KindDecimal, decimalColumns...)
		kinds.Add(render.KindCompact, compactColumns...)

		slog.Debug("Executing SQL query", "database", path, "query", args[0], "formatted_columns", len(kinds))

		table, err := db.QueryTable(ctx, args[0])
		if err != nil {
			return err
		}

		for col := range kinds {
			if !containsColumn(table.Columns, col) {
				slog.Warn("Formatted column not in result", "column", col)
			}
		}

		rows := make([][]string, 0, len(table.Rows))
		for i, values := range table.Rows {
			row, err := formatter.FormatRow(table.Columns, values, kinds)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			rows = append(rows, row)
		}

		render.WriteTable(cmd.OutOrStdout(), table.Columns, rows)
		slog.Info("Query complete", "rows", len(rows))

		return nil
	},
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&dbPath, "database", "d", "", "database file path")
	queryCmd.Flags().BoolVar(&listTables, "tables", false, "list available tables")
	queryCmd.Flags().StringSliceVar(&dateColumns, "date-columns", nil, "columns rendered as DD/MM/YYYY HH:MM:SS")
	queryCmd.Flags().StringSliceVar(&shortColumns, "short-columns", nil, "columns rendered as DD/MM HH:MM")
	queryCmd.Flags().StringSliceVar(&fullTimeColumns, "fulltime-columns", nil, "columns rendered as DD/MM HH:MM:SS")
	queryCmd.Flags().StringSliceVar(&decimalColumns, "decimal-columns", nil, "columns with scientific notation expanded")
	queryCmd.Flags().StringSliceVar(&compactColumns, "compact-columns", nil, "columns abbreviated with k/M/G")
}
