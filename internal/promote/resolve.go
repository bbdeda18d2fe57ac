package promote

import (
	"fmt"

	"castor/internal/diag"
	"castor/internal/kind"
	"castor/internal/operand"
)

// Resolve decides the result kind for one binary operation. It is
// synchronous and total: it either returns a Result or fails with an
// OverflowError from an unrepresentable weak literal. The mode is threaded
// explicitly; callers resolving against the process-wide mode pass
// Current().
func Resolve(mode Mode, a, b operand.Operand, op kind.Op) (Result, error) {
	spec, ok := kind.SpecFor(op)
	if !ok {
		return Result{}, fmt.Errorf("unsupported operation %v", op)
	}

	legacy := adjustForOp(op, advisoryBaselineKind(a, b))

	res := Result{Legacy: legacy}

	switch mode {
	case ModeLegacy:
		common := adjustForOp(op, legacyCommonKind(a, b))
		res.Common = common
		res.ConvA = legacyConv(a, common)
		res.ConvB = legacyConv(b, common)
	case ModeWeak, ModeWeakAndWarn:
		common := adjustForOp(op, weakCommonKind(a, b))
		res.Common = common

		var err error
		if res.ConvA, err = weakConv(a, common, &res.Events); err != nil {
			return Result{}, err
		}
		if res.ConvB, err = weakConv(b, common, &res.Events); err != nil {
			return Result{}, err
		}

		// Comparisons are exempt from the dtype-change advisory: it is
		// too noisy for them.
		if mode == ModeWeakAndWarn && spec.Class != kind.ClassCompare && common != legacy {
			res.Events = append(res.Events, diag.NewWarning(
				diag.PromDtypeChanged,
				fmt.Sprintf("result dtype changed from %s to %s", legacy, common),
			))
		}
	default:
		return Result{}, fmt.Errorf("unknown promotion mode %v", mode)
	}

	res.Kind = res.Common
	if spec.Class == kind.ClassCompare {
		res.Kind = kind.Bool
	}
	return res, nil
}

// adjustForOp applies operation-specific result rules: true division of
// integer or bool operands lands in float64.
func adjustForOp(op kind.Op, common kind.Kind) kind.Kind {
	if op == kind.OpDiv && (common.Integral() || common == kind.Bool) {
		return kind.Float64
	}
	return common
}

func legacyConv(op operand.Operand, common kind.Kind) *operand.Datum {
	w, ok := op.(operand.Weak)
	if !ok {
		return nil
	}
	d := legacyWeakDatum(w, common)
	return &d
}

func weakConv(op operand.Operand, common kind.Kind, events *[]diag.Diagnostic) (*operand.Datum, error) {
	w, ok := op.(operand.Weak)
	if !ok {
		return nil, nil
	}
	d, evs, err := operand.WeakToDatum(w, common)
	if err != nil {
		return nil, err
	}
	*events = append(*events, evs...)
	return &d, nil
}
