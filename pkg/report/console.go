package report

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Console writes short human-readable status lines. Colors are only
// emitted when the writer is a terminal.
type Console struct {
	out *termenv.Output
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{out: termenv.NewOutput(w)}
}

// Successf writes a green status line.
func (c *Console) Successf(format string, args ...any) {
	c.line("2", format, args...)
}

// Warnf writes a yellow status line.
func (c *Console) Warnf(format string, args ...any) {
	c.line("3", format, args...)
}

// Errorf writes a red status line.
func (c *Console) Errorf(format string, args ...any) {
	c.line("1", format, args...)
}

// Infof writes an unstyled status line.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, fmt.Sprintf(format, args...))
}

func (c *Console) line(color, format string, args ...any) {
	msg := c.out.String(fmt.Sprintf(format, args...)).Foreground(c.out.Color(color)).Bold()
	fmt.Fprintln(c.out, msg.String())
}
