// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/dtype"
	"github.com/katalvlaran/lvnum/ops"
	"github.com/katalvlaran/lvnum/scalar"
	"github.com/spf13/cobra"
)

// EvalResult is the outcome of one resolved operation.
type EvalResult struct {
	Op       string   `yaml:"op"`
	Operands []string `yaml:"operands"`
	Value    string   `yaml:"value"`
	Kind     string   `yaml:"kind"`
}

type evalFlags struct {
	epsilon float64
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &evalFlags{}

	cmd := &cobra.Command{
		Use:   "eval <op> <value:kind> [<value:kind>]",
		Short: "Resolve one operation and apply it",
		Long: `Resolve one operation for the operand kinds and apply it.

Operands are written value:kind, e.g. 3:int32, 2.5:float64, (1+2i):complex64
or 123456789012345678901234567890:boxed. Element-wise ops use guarded integer
division.`,
		Example: `  lvnum eval add 3:int32 2.5:float64
  lvnum eval sqrt 9:uint8
  lvnum eval atan2 1:float64 0:int8`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			res, err := Eval(f, args[0], args[1:], flags.epsilon)
			if err != nil {
				return err
			}
			return f.Render(res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s:%s\n", res.Value, res.Kind)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&flags.epsilon, "epsilon", -1, "comparison tolerance for float and complex operands (negative: machine epsilon of each type)")

	return cmd
}

// Eval parses the operands, resolves name for their kinds and applies the
// handle. A unary op takes one operand, every other op two.
func Eval(f *OutputFormatter, name string, operands []string, epsilon float64) (EvalResult, error) {
	vals := make([]any, len(operands))
	kinds := make([]dtype.Kind, len(operands))
	for i, s := range operands {
		k, v, err := ParseOperand(s)
		if err != nil {
			return EvalResult{}, err
		}
		kinds[i], vals[i] = k, v
	}

	var (
		out any
		res dtype.Kind
		err error
	)
	switch {
	case len(vals) == 1:
		op, perr := ops.ParseUnary(name)
		if perr != nil {
			return EvalResult{}, fmt.Errorf("%w: %w", ErrInvalidArgument, perr)
		}
		var h dispatch.UnaryHandle
		if h, err = dispatch.ResolveUnary(op, kinds[0]); err != nil {
			return EvalResult{}, err
		}
		f.VerboseLog("resolved %s(%s) -> %s", op, kinds[0], h.Result)
		res = h.Result
		out, err = h.Call(vals[0])
	default:
		var h dispatch.BinaryHandle
		if h, err = resolveBinary(name, kinds[0], kinds[1], epsilon); err != nil {
			return EvalResult{}, err
		}
		f.VerboseLog("resolved %s(%s, %s) -> %s", h.Name, kinds[0], kinds[1], h.Result)
		res = h.Result
		out, err = h.Call(vals[0], vals[1])
	}
	if err != nil {
		return EvalResult{}, err
	}

	return EvalResult{Op: name, Operands: operands, Value: fmt.Sprint(out), Kind: res.String()}, nil
}

func resolveBinary(name string, l, r dtype.Kind, epsilon float64) (dispatch.BinaryHandle, error) {
	if op, err := ops.ParseEW(name); err == nil {
		opts := []dispatch.Option{dispatch.WithGuardedIntegerDivision()}
		if epsilon >= 0 {
			opts = append(opts, dispatch.WithEpsilon(epsilon))
		}
		return dispatch.NewElementwiseTable(opts...).Resolve(op, l, r)
	}
	if op, err := ops.ParseNonCom(name); err == nil {
		return dispatch.ResolveNonCom(op, l, r)
	}

	return dispatch.BinaryHandle{}, fmt.Errorf("%w: %q is not a binary operation", ErrInvalidArgument, name)
}

// ParseOperand parses "value:kind" into a value of the Go type backing kind.
func ParseOperand(s string) (dtype.Kind, any, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return 0, nil, fmt.Errorf("%w: operand %q is not value:kind", ErrInvalidArgument, s)
	}
	k, err := parseKind(s[i+1:])
	if err != nil {
		return 0, nil, err
	}
	v, err := parseValue(k, s[:i])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: operand %q: %w", ErrInvalidArgument, s, err)
	}

	return k, v, nil
}

func parseValue(k dtype.Kind, s string) (any, error) {
	bits := int(k.Size()) * 8
	switch {
	case k == dtype.Uint8:
		x, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return nil, err
		}
		return uint8(x), nil
	case k.IsInteger():
		x, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return nil, err
		}
		return scalar.CastKind(k, x)
	case k.IsFloat():
		x, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return nil, err
		}
		return scalar.CastKind(k, x)
	case k.IsComplex():
		x, err := strconv.ParseComplex(s, bits)
		if err != nil {
			return nil, err
		}
		return scalar.CastKind(k, x)
	}

	if x, ok := new(big.Int).SetString(s, 0); ok {
		return scalar.Box(x)
	}
	d, err := scalar.ParseDecimal(s)
	if err != nil {
		return nil, err
	}

	return scalar.NewBoxed(d), nil
}
