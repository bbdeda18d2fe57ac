package promote

import (
	"math"
	"math/big"

	"castor/internal/kind"
	"castor/internal/operand"
)

// weakDefaultKind is the kind a weak literal assumes when nothing fixed
// constrains it: int64 when it fits, uint64 next, float64 for anything
// larger, and float64 for float literals.
func weakDefaultKind(w operand.Weak) kind.Kind {
	if w.IsFloat {
		return kind.Float64
	}
	return kind.DefaultIntKind(w.Int)
}

func weakCategory(w operand.Weak) kind.Category {
	if w.IsFloat {
		return kind.CatFloat
	}
	return kind.CatInt
}

// minScalarOf returns the value-based minimal kind of a typed scalar, the
// input legacy promotion feeds into the common-kind table for scalars that
// ride along with true arrays.
func minScalarOf(k kind.Kind, d operand.Datum) kind.Kind {
	switch {
	case k.Integral():
		return kind.MinScalarInt(operand.BigIntOf(d, k))
	case k.Complex():
		c := operand.ComplexOf(d, k)
		m := math.Max(math.Abs(real(c)), math.Abs(imag(c)))
		if m <= math.MaxFloat32 {
			return kind.Complex64
		}
		return kind.Complex128
	case k.Inexact():
		return kind.MinScalarFloat(operand.FloatOf(d, k))
	default:
		return k
	}
}

func minScalarOfWeak(w operand.Weak) kind.Kind {
	if w.IsFloat {
		return kind.MinScalarFloat(w.Float)
	}
	return kind.MinScalarInt(w.Int)
}

// legacyCommonKind computes the historical common kind. True arrays
// dominate scalar-like operands of the same or lower category; those
// scalars contribute only their value-based minimal kind. With no true
// array the fixed scalars set the category ceiling and weak literals at or
// below it stay value-based, so uint8(1) + 2 lands in uint8.
func legacyCommonKind(a, b operand.Operand) kind.Kind {
	return legacyCommon(a, b, false)
}

// advisoryBaselineKind is the kind the dtype-change advisory compares
// against. It differs from legacyCommonKind in one place: weak literals in
// all-scalar operations take their default kind, the int64/float64 a bare
// literal historically surfaced as.
func advisoryBaselineKind(a, b operand.Operand) kind.Kind {
	return legacyCommon(a, b, true)
}

func legacyCommon(a, b operand.Operand, weakDefaults bool) kind.Kind {
	ops := []operand.Operand{a, b}

	maxArrCat := kind.CatInvalid
	maxFixedCat := kind.CatInvalid
	for _, op := range ops {
		if k, ok := operand.FixedKind(op); ok {
			if c := k.Category(); c > maxFixedCat {
				maxFixedCat = c
			}
			if !operand.IsZeroDim(op) && k.Category() > maxArrCat {
				maxArrCat = k.Category()
			}
		}
	}

	kinds := make([]kind.Kind, 0, 2)
	for _, op := range ops {
		switch o := op.(type) {
		case *operand.Array:
			if !operand.IsZeroDim(op) {
				kinds = append(kinds, o.Kind)
				continue
			}
			kinds = append(kinds, legacyScalarKind(o.Kind, o.Data[0], maxArrCat))
		case operand.Scalar:
			kinds = append(kinds, legacyScalarKind(o.Kind, o.Datum, maxArrCat))
		case operand.Weak:
			ceiling := maxArrCat
			if maxArrCat == kind.CatInvalid && !weakDefaults {
				ceiling = maxFixedCat
			}
			if ceiling == kind.CatInvalid || weakCategory(o) > ceiling {
				kinds = append(kinds, weakDefaultKind(o))
				continue
			}
			kinds = append(kinds, minScalarOfWeak(o))
		}
	}
	return kind.PromoteAll(kinds)
}

func legacyScalarKind(k kind.Kind, d operand.Datum, maxArrCat kind.Category) kind.Kind {
	if maxArrCat == kind.CatInvalid || k.Category() > maxArrCat {
		return k
	}
	return minScalarOf(k, d)
}

// legacyWeakDatum converts a weak literal for legacy evaluation: silent,
// wrapping integers and saturating floats, with no promotion diagnostics.
func legacyWeakDatum(w operand.Weak, k kind.Kind) operand.Datum {
	if k.Integral() {
		v := w.Int
		if w.IsFloat {
			v, _ = new(big.Float).SetFloat64(math.Trunc(w.Float)).Int(nil)
		}
		d, _ := operand.WrapBig(v, k)
		return d
	}
	host := w.Float
	if !w.IsFloat {
		bf := new(big.Float).SetInt(w.Int)
		host, _ = bf.Float64()
	}
	if k.Complex() {
		return operand.ScalarComplex(k, complex(host, 0)).Datum
	}
	return operand.ScalarFloat(k, host).Datum
}
