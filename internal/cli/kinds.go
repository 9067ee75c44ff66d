// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvnum/dtype"
	"github.com/spf13/cobra"
)

// KindInfo describes one catalogue entry.
type KindInfo struct {
	Ordinal int    `yaml:"ordinal"`
	Name    string `yaml:"name"`
	Size    uint64 `yaml:"size"`
	Class   string `yaml:"class"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the element kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(newFormatter(rootOpts, cmd))
		},
	}
}

// Kinds returns the catalogue in ordinal order.
func Kinds() []KindInfo {
	out := make([]KindInfo, 0, dtype.NumKinds)
	for _, k := range dtype.Kinds() {
		out = append(out, KindInfo{Ordinal: int(k), Name: k.String(), Size: uint64(k.Size()), Class: k.Class()})
	}

	return out
}

func runKinds(f *OutputFormatter) error {
	kinds := Kinds()

	return f.Render(kinds, func(w io.Writer) error {
		g := newGrid(w, "ORD", "NAME", "SIZE", "CLASS")
		for _, k := range kinds {
			g.row(fmt.Sprint(k.Ordinal), k.Name, fmt.Sprint(k.Size), k.Class)
		}
		return g.flush()
	})
}
