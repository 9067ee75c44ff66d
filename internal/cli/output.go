// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// ErrInvalidArgument marks a command argument that does not name a kind, an
// operation or a parsable value.
var ErrInvalidArgument = errors.New("cli: invalid argument")

// OutputFormatter handles YAML vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // separate writer for verbose output (defaults to Writer)
	Verbose   bool
}

// Render writes data as YAML, or calls text for the human-readable form.
func (f *OutputFormatter) Render(data any, text func(w io.Writer) error) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	return text(f.Writer)
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// grid collects tab-separated rows and aligns them on Flush. On a terminal
// the header row is underlined.
type grid struct {
	out    io.Writer
	tw     *tabwriter.Writer
	header []string
}

func newGrid(w io.Writer, header ...string) *grid {
	g := &grid{out: w, tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0), header: header}
	if len(header) > 0 {
		g.row(header...)
		if isTerminal(w) {
			rule := make([]string, len(header))
			for i, h := range header {
				rule[i] = strings.Repeat("-", len(h))
			}
			g.row(rule...)
		}
	}

	return g
}

func (g *grid) row(cells ...string) {
	fmt.Fprintln(g.tw, strings.Join(cells, "\t"))
}

func (g *grid) flush() error { return g.tw.Flush() }

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
