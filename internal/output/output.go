// Package output renders results in the formats the CLI exposes
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter renders a result value into bytes for stdout or a file
type Formatter interface {
	Format(data any, pretty bool) ([]byte, error)
}

// TableData is implemented by result types that know their tabular shape
type TableData interface {
	TableHeader() []string
	TableRows() [][]string
}

// NewFormatter returns the formatter for a format name, defaulting to table
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	case "table", "":
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// JSONFormatter renders results as JSON
type JSONFormatter struct{}

func (f *JSONFormatter) Format(data any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// YAMLFormatter renders results as YAML
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(data any, _ bool) ([]byte, error) {
	return yaml.Marshal(data)
}

// TableFormatter renders results as an aligned text table. Values that do
// not implement TableData fall back to pretty JSON.
type TableFormatter struct{}

func (f *TableFormatter) Format(data any, pretty bool) ([]byte, error) {
	table, ok := data.(TableData)
	if !ok {
		return (&JSONFormatter{}).Format(data, pretty)
	}

	header := table.TableHeader()
	rows := table.TableRows()

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
	}

	writeRow(header)
	separators := make([]string, len(header))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeRow(separators)
	for _, row := range rows {
		writeRow(row)
	}

	return []byte(b.String()), nil
}
