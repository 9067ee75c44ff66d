// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/spf13/cobra"
)

// UpcastResult is one promotion.
type UpcastResult struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Result string `yaml:"result"`
}

// NewUpcastCommand creates the upcast command.
func NewUpcastCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upcast [<kind> <kind>]",
		Short: "Show one promotion or the whole upcast table",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			if len(args) == 0 {
				return runUpcastTable(f)
			}
			return runUpcastPair(f, args[0], args[1])
		},
	}
}

func parseKind(s string) (dtype.Kind, error) {
	k, err := dtype.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return k, nil
}

func runUpcastPair(f *OutputFormatter, a, b string) error {
	l, err := parseKind(a)
	if err != nil {
		return err
	}
	r, err := parseKind(b)
	if err != nil {
		return err
	}
	res := UpcastResult{Left: l.String(), Right: r.String(), Result: dtype.Upcast(l, r).String()}

	return f.Render(res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s, %s -> %s\n", res.Left, res.Right, res.Result)
		return err
	})
}

func runUpcastTable(f *OutputFormatter) error {
	table := dtype.UpcastTable()
	kinds := dtype.Kinds()

	pairs := make([]UpcastResult, 0, len(kinds)*len(kinds))
	for _, l := range kinds {
		for _, r := range kinds {
			pairs = append(pairs, UpcastResult{Left: l.String(), Right: r.String(), Result: table[l][r].String()})
		}
	}

	return f.Render(pairs, func(w io.Writer) error {
		g := newGrid(w, kindHeader()...)
		for _, l := range kinds {
			cells := []string{l.String()}
			for _, r := range kinds {
				cells = append(cells, table[l][r].String())
			}
			g.row(cells...)
		}
		return g.flush()
	})
}

// kindHeader is an empty corner cell followed by every kind name.
func kindHeader() []string {
	h := []string{""}
	for _, k := range dtype.Kinds() {
		h = append(h, k.String())
	}

	return h
}
