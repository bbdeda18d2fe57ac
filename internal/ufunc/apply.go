package ufunc

import (
	"fmt"

	"castor/internal/diag"
	"castor/internal/errstate"
	"castor/internal/kind"
	"castor/internal/operand"
	"castor/internal/promote"
)

// Apply evaluates one element-wise binary operation under the process-wide
// promotion mode and errstate.
func Apply(op kind.Op, a, b operand.Operand) (operand.Operand, *diag.Bag, error) {
	return ApplyMode(promote.Current(), op, a, b)
}

// ApplyMode evaluates one element-wise binary operation with an explicit
// promotion mode. Diagnostics land in the returned bag; OverflowError from
// an unrepresentable weak literal and FloatingPointError from
// errstate(over=raise) abort the call.
func ApplyMode(mode promote.Mode, op kind.Op, a, b operand.Operand) (operand.Operand, *diag.Bag, error) {
	bag := diag.NewBag(16)

	spec, ok := kind.SpecFor(op)
	if !ok {
		return nil, bag, fmt.Errorf("unsupported operation %v", op)
	}
	if spec.Left&familyOf(a) == 0 || spec.Right&familyOf(b) == 0 {
		return nil, bag, fmt.Errorf("unsupported operand kinds for %v", op)
	}

	res, err := promote.Resolve(mode, a, b, op)
	if err != nil {
		return nil, bag, err
	}
	// Promotion events bypass the runtime cap; Merge grows it as needed.
	promo := diag.NewBag(len(res.Events))
	for _, ev := range res.Events {
		promo.Add(ev)
	}
	bag.Merge(promo)

	shape, n, err := broadcastShape(a, b)
	if err != nil {
		return nil, bag, err
	}

	va := streamOf(a, res.ConvA, res.Common)
	vb := streamOf(b, res.ConvB, res.Common)

	out := make([]operand.Datum, n)
	overflowed := false
	for i := 0; i < n; i++ {
		if spec.Class == kind.ClassCompare {
			out[i] = compare(res.Common, va.at(i), vb.at(i), op)
			continue
		}
		d, ovf := arith(res.Common, va.at(i), vb.at(i), op)
		out[i] = d
		overflowed = overflowed || ovf
	}

	if overflowed {
		if err := reportOverflow(res, op, a, b, bag); err != nil {
			return nil, bag, err
		}
	}

	if _, isArrA := a.(*operand.Array); isArrA {
		return operand.NewArray(res.Kind, shape, out), bag, nil
	}
	if _, isArrB := b.(*operand.Array); isArrB {
		return operand.NewArray(res.Kind, shape, out), bag, nil
	}
	return operand.Scalar{Kind: res.Kind, Datum: out[0]}, bag, nil
}

// reportOverflow applies the errstate policy to arithmetic overflow.
// Integer overflow diagnoses only for pure scalar operations; arrays wrap
// silently. On the change-warning path (an advisory already fired for this
// call) integer overflow reporting is suppressed entirely.
func reportOverflow(res promote.Result, op kind.Op, a, b operand.Operand, bag *diag.Bag) error {
	if res.Common.Integral() {
		if !scalarOnly(a) || !scalarOnly(b) {
			return nil
		}
		if res.HasAdvisory() {
			return nil
		}
	}
	msg := fmt.Sprintf("overflow encountered in %s %s", opContext(a, b), op)
	switch errstate.Current().Over {
	case errstate.Warn:
		bag.Add(diag.NewWarning(diag.OvfArithOverflow, msg))
	case errstate.Raise:
		return floatingPointf("%s", msg)
	}
	return nil
}

func scalarOnly(op operand.Operand) bool {
	_, isArr := op.(*operand.Array)
	return !isArr
}

func opContext(a, b operand.Operand) string {
	if scalarOnly(a) && scalarOnly(b) {
		return "scalar"
	}
	return "array"
}

func familyOf(op operand.Operand) kind.Family {
	if k, ok := operand.FixedKind(op); ok {
		return k.Family()
	}
	if op.(operand.Weak).IsFloat {
		return kind.FamilyFloat
	}
	return kind.FamilySigned
}

// stream yields operand elements cast to the common kind, broadcasting
// single values.
type stream struct {
	data   []operand.Datum
	single bool
}

func (s stream) at(i int) operand.Datum {
	if s.single {
		return s.data[0]
	}
	return s.data[i]
}

func streamOf(op operand.Operand, conv *operand.Datum, common kind.Kind) stream {
	switch o := op.(type) {
	case operand.Weak:
		return stream{data: []operand.Datum{*conv}, single: true}
	case operand.Scalar:
		return stream{data: []operand.Datum{operand.CastDatum(o.Datum, o.Kind, common)}, single: true}
	case *operand.Array:
		data := make([]operand.Datum, len(o.Data))
		for i, d := range o.Data {
			data[i] = operand.CastDatum(d, o.Kind, common)
		}
		return stream{data: data, single: o.Size() == 1}
	default:
		return stream{}
	}
}

// broadcastShape supports scalar-with-array and equal-shape pairs; general
// broadcasting is out of scope.
func broadcastShape(a, b operand.Operand) ([]int, int, error) {
	arrA, okA := a.(*operand.Array)
	arrB, okB := b.(*operand.Array)
	switch {
	case okA && okB:
		if arrA.NDim() != 0 && arrB.NDim() != 0 && !sameShape(arrA.Shape, arrB.Shape) {
			return nil, 0, fmt.Errorf("shape mismatch: %v vs %v", arrA.Shape, arrB.Shape)
		}
		if arrA.Size() >= arrB.Size() {
			return arrA.Shape, arrA.Size(), nil
		}
		return arrB.Shape, arrB.Size(), nil
	case okA:
		return arrA.Shape, arrA.Size(), nil
	case okB:
		return arrB.Shape, arrB.Size(), nil
	default:
		return nil, 1, nil
	}
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
