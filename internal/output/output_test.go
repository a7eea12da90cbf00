package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTable struct{}

func (testTable) TableHeader() []string { return []string{"NAME", "VALUE"} }
func (testTable) TableRows() [][]string {
	return [][]string{{"alpha", "1"}, {"beta-long", "2"}}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"json", "yaml", "table", ""} {
		formatter, err := NewFormatter(format)
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, formatter)
	}

	_, err := NewFormatter("csv")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}

	data, err := formatter.Format(map[string]int{"samples": 4}, false)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded["samples"])
}

func TestYAMLFormatter(t *testing.T) {
	formatter := &YAMLFormatter{}

	data, err := formatter.Format(map[string]string{"unit": "m/s2"}, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unit: m/s2")
}

func TestTableFormatter(t *testing.T) {
	formatter := &TableFormatter{}

	data, err := formatter.Format(testTable{}, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "alpha")
	assert.Contains(t, lines[3], "beta-long")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	formatter := &TableFormatter{}

	data, err := formatter.Format(map[string]int{"k": 1}, true)
	require.NoError(t, err)

	var decoded map[string]int
	assert.NoError(t, json.Unmarshal(data, &decoded))
}
