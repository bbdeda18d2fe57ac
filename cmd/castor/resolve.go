package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"castor/internal/kind"
	"castor/internal/operand"
	"castor/internal/promote"
	"castor/internal/ufunc"
)

var resolveOpName string

func init() {
	resolveCmd.Flags().StringVar(&resolveOpName, "op", "add", "operation (add|subtract|multiply|divide|equal|less|...)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <operand> <operand>",
	Short: "Resolve one binary operation and show the promoted result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, ok := kind.OpFromName(resolveOpName)
		if !ok {
			return fmt.Errorf("unknown operation %q", resolveOpName)
		}
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		quiet, _ := cmd.Flags().GetBool("quiet")

		result, bag, err := ufunc.Apply(op, a, b)
		if !quiet && bag != nil && bag.HasWarnings() {
			printBag(out, bag)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "mode:   %s\n", promote.Current())
		fmt.Fprintf(out, "result: %s\n", describeOperand(result))
		return nil
	},
}

func describeOperand(op operand.Operand) string {
	switch o := op.(type) {
	case operand.Scalar:
		return fmt.Sprintf("%s scalar %s", o.Kind, formatDatum(o.Datum, o.Kind))
	case *operand.Array:
		var elems string
		for i, d := range o.Data {
			if i > 0 {
				elems += ", "
			}
			elems += formatDatum(d, o.Kind)
		}
		return fmt.Sprintf("%s array [%s]", o.Kind, elems)
	case operand.Weak:
		if o.IsFloat {
			return fmt.Sprintf("weak float %v", o.Float)
		}
		return fmt.Sprintf("weak int %s", o.Int)
	default:
		return "unknown"
	}
}

func formatDatum(d operand.Datum, k kind.Kind) string {
	switch {
	case k == kind.Bool:
		return fmt.Sprintf("%v", d.Bool)
	case k.Signed():
		return fmt.Sprintf("%d", d.Int)
	case k.Unsigned():
		return fmt.Sprintf("%d", d.Uint)
	case k.Complex():
		return fmt.Sprintf("%v", d.Cmplx)
	default:
		return fmt.Sprintf("%v", d.Float)
	}
}
