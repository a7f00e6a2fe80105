package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults() []Result {
	return []Result{
		{Input: "1500000", Output: "2M"},
		{Input: "nope", Err: errors.New("value is not a number: \"nope\"")},
	}
}

func TestWriteResultsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, OutputText, sampleResults()))
	assert.Equal(t, "2M\nERROR: value is not a number: \"nope\"\n", buf.String())
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, OutputJSON, sampleResults()))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "2M", decoded[0]["output"])
	assert.NotContains(t, decoded[0], "error")
	assert.Contains(t, decoded[1]["error"], "not a number")
}

func TestWriteResultsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, OutputYAML, sampleResults()))

	var decoded []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "1500000", decoded[0]["input"])
	assert.Equal(t, "2M", decoded[0]["output"])
}

func TestWriteResultsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, OutputTable, sampleResults()))
	assert.Contains(t, buf.String(), "1500000")
	assert.Contains(t, buf.String(), "2M")
}

func TestWriteResultsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteResults(&buf, "xml", sampleResults()))
}

func TestFormatRow(t *testing.T) {
	f := testFormatter()
	kinds := ColumnKinds{}
	kinds.Add(KindDate, "created_at")
	kinds.Add(KindCompact, "views", " ")

	row, err := f.FormatRow(
		[]string{"id", "created_at", "views", "note"},
		[]any{int64(7), "2024-03-05 10:07:09", int64(1500000), nil},
		kinds,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "05/03/2024 08:07:09", "2M", "NULL"}, row)
	assert.Len(t, kinds, 2)
}

func TestFormatRowErrors(t *testing.T) {
	f := testFormatter()
	kinds := ColumnKinds{"views": KindCompact}

	_, err := f.FormatRow([]string{"views"}, []any{"many"}, kinds)
	assert.ErrorIs(t, err, ErrNotNumber)

	_, err = f.FormatRow([]string{"a", "b"}, []any{1}, kinds)
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []string{"id", "views"}, [][]string{{"1", "2M"}})
	assert.Contains(t, buf.String(), "views")
	assert.Contains(t, buf.String(), "2M")
}
