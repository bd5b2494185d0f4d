package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

// TableFormatter writes left-aligned plain-text tables.
type TableFormatter struct {
	opts options
}

// NewTableFormatter creates a table formatter.
func NewTableFormatter(opts ...Option) *TableFormatter {
	return &TableFormatter{opts: buildOptions(opts)}
}

// FormatMaps writes one row per map.
func (f *TableFormatter) FormatMaps(w io.Writer, maps []interfaces.Map) error {
	return writeTable(w, mapHeaders, MapRows(maps, f.opts.loc))
}

// FormatMap writes one row per effective CIDR of m.
func (f *TableFormatter) FormatMap(w io.Writer, m *interfaces.Map) error {
	return writeTable(w, cidrHeaders, CIDRRows(m))
}

// writeTable renders headers, a dashed rule, and rows with two spaces
// between columns.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}

	for _, line := range append([][]string{headers, rule}, rows...) {
		if _, err := fmt.Fprintln(tw, strings.Join(line, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
