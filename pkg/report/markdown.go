package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

// MarkdownFormatter writes GitHub-flavored Markdown tables, suitable for
// pasting into tickets or change requests.
type MarkdownFormatter struct {
	opts options
}

// NewMarkdownFormatter creates a Markdown formatter.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	return &MarkdownFormatter{opts: buildOptions(opts)}
}

// FormatMaps writes the map listing as a Markdown table.
func (f *MarkdownFormatter) FormatMaps(w io.Writer, maps []interfaces.Map) error {
	return writeMarkdownTable(w, mapHeaders, MapRows(maps, f.opts.loc))
}

// FormatMap writes the effective CIDRs of m as a Markdown table.
func (f *MarkdownFormatter) FormatMap(w io.Writer, m *interfaces.Map) error {
	return writeMarkdownTable(w, cidrHeaders, CIDRRows(m))
}

func writeMarkdownTable(w io.Writer, headers []string, rows [][]string) error {
	rule := make([]string, len(headers))
	for i := range rule {
		rule[i] = "---"
	}

	for _, line := range append([][]string{headers, rule}, rows...) {
		cells := make([]string, len(line))
		for i, c := range line {
			cells[i] = escapeCell(c)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
