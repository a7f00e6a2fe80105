package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jchantrell/displayfmt/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "displayfmt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDateCommand(t *testing.T) {
	out, err := execute(t, "date", "--layout", "full", "--server-offset", "180", "--local-offset", "0",
		"2024-03-05 10:07:09", "")
	require.NoError(t, err)
	assert.Equal(t, "05/03/2024 07:07:09\n\n", out)

	out, err = execute(t, "date", "--layout", "short", "--server-offset", "180", "--local-offset", "120",
		"2024-03-05 10:07:09")
	require.NoError(t, err)
	assert.Equal(t, "05/03 09:07\n", out)

	out, err = execute(t, "date", "--layout", "fulltime", "--server-offset", "0", "--local-offset", "0",
		"1709633229000")
	require.NoError(t, err)
	assert.Equal(t, "05/03 10:07:09\n", out)
}

func TestDateCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "date", "--layout", "full", "--local-offset", "0", "someday")
	assert.Error(t, err)
}

func TestNumberCommands(t *testing.T) {
	out, err := execute(t, "number", "decimal", "1.5e3", "1.5e-3", "42", "--", "-2.5e2")
	require.NoError(t, err)
	assert.Equal(t, "1500\n0.0015\n42\n-250\n", out)

	out, err = execute(t, "number", "compact", "999", "1000", "1500000", "2000000000")
	require.NoError(t, err)
	assert.Equal(t, "999\n1k\n2M\n2G\n", out)

	out, err = execute(t, "number", "threshold")
	require.NoError(t, err)
	assert.Equal(t, "999\n", out)

	_, err = execute(t, "number", "compact", "plenty")
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(input, []byte("1500\n2500000\n12\n"), 0644))

	out, err := execute(t, "batch", "--input", input, "--kind", "compact", "--output", "json",
		"--workers", "2", "--no-progress")
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "2k", decoded[0]["output"])
	assert.Equal(t, "3M", decoded[1]["output"])
	assert.Equal(t, "12", decoded[2]["output"])
}

func TestBatchCommandReportsFailures(t *testing.T) {
	input := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(input, []byte("1e3\nnope\n"), 0644))

	out, err := execute(t, "batch", "--input", input, "--kind", "compact", "--output", "text", "--no-progress")
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(out, "1k\nERROR: "))

	_, err = execute(t, "batch", "--input", input, "--kind", "morse", "--no-progress")
	assert.Error(t, err)
}

func TestQueryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	db, err := database.NewDatabase(&database.DatabaseOptions{Path: path})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx, `CREATE TABLE events (id INTEGER PRIMARY KEY, created_at TEXT, views INTEGER, ratio TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `INSERT INTO events (created_at, views, ratio) VALUES ('2024-03-05 10:07:09', 1500000, '1.5e-3')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := execute(t, "query", "--database", path, "--server-offset", "180", "--local-offset", "0",
		"--layout", "full",
		"--date-columns", "created_at", "--compact-columns", "views", "--decimal-columns", "ratio",
		"SELECT id, created_at, views, ratio FROM events")
	require.NoError(t, err)
	assert.Contains(t, out, "05/03/2024 07:07:09")
	assert.Contains(t, out, "2M")
	assert.Contains(t, out, "0.0015")

	out, err = execute(t, "query", "--database", path, "--tables")
	require.NoError(t, err)
	assert.Contains(t, out, "events")
}
