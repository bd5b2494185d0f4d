package report

import (
	"io"
	"time"

	"github.com/toyinlola/siteshield/pkg/interfaces"
)

// Formatter writes maps to a writer.
type Formatter interface {
	// FormatMaps renders a map listing.
	FormatMaps(w io.Writer, maps []interfaces.Map) error
	// FormatMap renders a single map: its CIDRs for tabular formats, the
	// full record for structured ones.
	FormatMap(w io.Writer, m *interfaces.Map) error
}

// Option configures a formatter.
type Option func(*options)

type options struct {
	loc *time.Location
}

// WithLocation sets the time zone used for timestamps. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.loc = loc }
}

func buildOptions(opts []Option) options {
	o := options{loc: time.Local}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the formatter for the given format. Unknown formats fall back to the table.
func New(format interfaces.Format, opts ...Option) Formatter {
	switch format {
	case interfaces.FormatJSON:
		return NewJSONFormatter()
	case interfaces.FormatYAML:
		return NewYAMLFormatter()
	case interfaces.FormatMarkdown:
		return NewMarkdownFormatter(opts...)
	default:
		return NewTableFormatter(opts...)
	}
}
