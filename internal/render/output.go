package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteResults
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

type resultRecord struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func records(results []Result) []resultRecord {
	out := make([]resultRecord, len(results))
	for i, r := range results {
		out[i] = resultRecord{Input: r.Input, Output: r.Output}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

// WriteResults writes results to w in the requested output format
func WriteResults(w io.Writer, format string, results []Result) error {
	switch strings.ToLower(format) {
	case "", OutputText:
		for _, r := range results {
			line := r.Output
			if r.Err != nil {
				line = "ERROR: " + r.Err.Error()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}
		return nil

	case OutputTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Input", "Output", "Error"})
		table.SetBorder(true)
		table.SetAutoWrapText(false)
		for _, r := range records(results) {
			table.Append([]string{r.Input, r.Output, r.Error})
		}
		table.Render()
		return nil

	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records(results)); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(results)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flushing yaml: %w", err)
		}
		return nil
	}

	return fmt.Errorf("unsupported output format '%s': expected text, table, json or yaml", format)
}

// ColumnKinds maps result column names to the kind used to format them
type ColumnKinds map[string]Kind

// Add assigns kind to each named column
func (c ColumnKinds) Add(kind Kind, columns ...string) {
	for _, col := range columns {
		col = strings.TrimSpace(col)
		if col != "" {
			c[col] = kind
		}
	}
}

// FormatRow renders one database row. Columns with an assigned kind go
// through the formatter; the rest are printed as-is, with NULL for nil.
func (f *Formatter) FormatRow(columns []string, values []any, kinds ColumnKinds) ([]string, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("row has %d values for %d columns", len(values), len(columns))
	}

	out := make([]string, len(values))
	for i, val := range values {
		kind, ok := kinds[columns[i]]
		if !ok {
			out[i] = cell(val)
			continue
		}
		s, err := f.Format(kind, val)
		if err != nil {
			return nil, fmt.Errorf("formatting column %s: %w", columns[i], err)
		}
		out[i] = s
	}
	return out, nil
}

func cell(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	}
	return fmt.Sprintf("%v", val)
}

// WriteTable renders a header and rows as a bordered table
func WriteTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
}
