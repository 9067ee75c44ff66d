// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/spf13/cobra"
)

// Operation families as reported by the table command.
const (
	FamilyElementwise    = "element-wise"
	FamilyNonCommutative = "non-commutative"
	FamilyUnary          = "unary"
)

// CellReport is one dispatch cell. Right is empty for unary ops; Result is
// set only for Ready cells.
type CellReport struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right,omitempty"`
	State  string `yaml:"state"`
	Result string `yaml:"result,omitempty"`
}

// TableReport is the legality grid of one operation.
type TableReport struct {
	Op     string         `yaml:"op"`
	Family string         `yaml:"family"`
	Stats  dispatch.Stats `yaml:"stats"`
	Cells  []CellReport   `yaml:"cells"`
}

type tableFlags struct {
	guarded bool
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table <op>",
		Short: "Show the dispatch legality grid of one operation",
		Long: `Show the dispatch legality grid of one operation.

Cells read "+" for ready, "-" for unsupported and "!" for not implemented.
Element-wise ops are shown for the default table, where integer division
and modulo are unsupported, unless --guarded is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			report, err := BuildTableReport(args[0], flags.guarded)
			if err != nil {
				return err
			}
			f.VerboseLog("%s %s: %d cells", report.Family, report.Op, report.Stats.Total())
			return renderTable(f, report)
		},
	}

	cmd.Flags().BoolVar(&flags.guarded, "guarded", false, "use guarded integer division for element-wise ops")

	return cmd
}

// BuildTableReport resolves name against the element-wise, non-commutative
// and unary catalogues, in that order, and collects its cells.
func BuildTableReport(name string, guarded bool) (TableReport, error) {
	if op, err := ops.ParseEW(name); err == nil {
		t := dispatch.Elementwise()
		if guarded {
			t = dispatch.NewElementwiseTable(dispatch.WithGuardedIntegerDivision())
		}
		t.Build()
		return binaryReport(op.String(), FamilyElementwise, func(l, r dtype.Kind) (dispatch.BinaryHandle, dispatch.State) {
			return t.Lookup(op, l, r)
		}), nil
	}
	if op, err := ops.ParseNonCom(name); err == nil {
		t := dispatch.NonCommutative().Build()
		return binaryReport(op.String(), FamilyNonCommutative, func(l, r dtype.Kind) (dispatch.BinaryHandle, dispatch.State) {
			return t.Lookup(op, l, r)
		}), nil
	}
	if op, err := ops.ParseUnary(name); err == nil {
		return unaryReport(op), nil
	}

	return TableReport{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, name)
}

func binaryReport(op, family string, lookup func(l, r dtype.Kind) (dispatch.BinaryHandle, dispatch.State)) TableReport {
	rep := TableReport{Op: op, Family: family}
	for _, l := range dtype.Kinds() {
		for _, r := range dtype.Kinds() {
			h, st := lookup(l, r)
			rep.add(l.String(), r.String(), st, h.Result)
		}
	}

	return rep
}

func unaryReport(op ops.Unary) TableReport {
	t := dispatch.Unaries().Build()
	rep := TableReport{Op: op.String(), Family: FamilyUnary}
	for _, k := range dtype.Kinds() {
		h, st := t.Lookup(op, k)
		rep.add(k.String(), "", st, h.Result)
	}

	return rep
}

func (r *TableReport) add(left, right string, st dispatch.State, res dtype.Kind) {
	c := CellReport{Left: left, Right: right, State: st.String()}
	if st == dispatch.Ready {
		c.Result = res.String()
	}
	switch st {
	case dispatch.Ready:
		r.Stats.Ready++
	case dispatch.Unsupported:
		r.Stats.Unsupported++
	case dispatch.NotImplemented:
		r.Stats.NotImplemented++
	default:
		r.Stats.Unbuilt++
	}
	r.Cells = append(r.Cells, c)
}

func stateSymbol(s string) string {
	switch s {
	case dispatch.Ready.String():
		return "+"
	case dispatch.Unsupported.String():
		return "-"
	case dispatch.NotImplemented.String():
		return "!"
	}

	return "?"
}

func renderTable(f *OutputFormatter, rep TableReport) error {
	return f.Render(rep, func(w io.Writer) error {
		fmt.Fprintf(w, "%s (%s): %d ready, %d unsupported, %d not implemented\n",
			rep.Op, rep.Family, rep.Stats.Ready, rep.Stats.Unsupported, rep.Stats.NotImplemented)

		if rep.Family == FamilyUnary {
			g := newGrid(w, "KIND", "STATE", "RESULT")
			for _, c := range rep.Cells {
				g.row(c.Left, stateSymbol(c.State), c.Result)
			}
			return g.flush()
		}

		g := newGrid(w, kindHeader()...)
		n := dtype.NumKinds
		for i := 0; i < len(rep.Cells); i += n {
			cells := []string{rep.Cells[i].Left}
			for _, c := range rep.Cells[i : i+n] {
				cells = append(cells, stateSymbol(c.State))
			}
			g.row(cells...)
		}
		return g.flush()
	})
}
