package operand

import (
	"fmt"
	"math"
	"math/big"

	"castor/internal/diag"
	"castor/internal/kind"
)

// WeakToDatum converts a weak literal into a fixed kind. In-range
// conversions are silent. Out-of-range integers raise OverflowError naming
// the target kind; out-of-range magnitudes in inexact kinds either raise
// (kinds that narrow through the host float) or saturate to signed infinity
// with an overflow event.
func WeakToDatum(w Weak, k kind.Kind) (Datum, []diag.Diagnostic, error) {
	switch {
	case k.Integral():
		if w.IsFloat {
			return Datum{}, nil, Overflowf("cannot convert float literal %v to integer kind %s", w.Float, k)
		}
		if !kind.FitsInt(w.Int, k) {
			if w.Int.Sign() < 0 && k.Unsigned() {
				return Datum{}, nil, Overflowf("cannot convert negative Python integer %s to unsigned kind %s", w.Int, k)
			}
			return Datum{}, nil, Overflowf("Python integer %s out of bounds for %s", w.Int, k)
		}
		return datumFromBig(w.Int, k), nil, nil

	case k.Inexact():
		host := w.Float
		if !w.IsFloat {
			bf := new(big.Float).SetInt(w.Int)
			host, _ = bf.Float64() // signed infinity past the host range
		}
		if !kind.FitsFloat(host, k) {
			if !w.IsFloat && k.HostFloatRouted() {
				return Datum{}, nil, Overflowf("Python int too large to convert to %s", k)
			}
			inf := math.Inf(1)
			if math.Signbit(host) {
				inf = math.Inf(-1)
			}
			ev := diag.NewWarning(diag.OvfCastOverflow, fmt.Sprintf("overflow encountered in conversion of Python %s to %s", w.literalName(), k))
			if k.Complex() {
				return Datum{Cmplx: complex(inf, 0)}, []diag.Diagnostic{ev}, nil
			}
			return Datum{Float: inf}, []diag.Diagnostic{ev}, nil
		}
		if k.Complex() {
			return Datum{Cmplx: roundComplex(k, complex(host, 0))}, nil, nil
		}
		return Datum{Float: roundFloat(k, host)}, nil, nil

	default:
		return Datum{}, nil, Overflowf("cannot convert Python %s to %s", w.literalName(), k)
	}
}

func (w Weak) literalName() string {
	if w.IsFloat {
		return "float"
	}
	return "int"
}

// CastDatum converts a fixed-kind datum into another fixed kind. Fixed
// casts wrap and saturate silently; only weak conversions diagnose.
func CastDatum(d Datum, from, to kind.Kind) Datum {
	if from == to {
		return d
	}
	switch {
	case to == kind.Bool:
		return Datum{Bool: !isZero(d, from)}
	case to.Integral():
		var exact *big.Int
		switch {
		case from == kind.Bool:
			exact = big.NewInt(0)
			if d.Bool {
				exact = big.NewInt(1)
			}
		case from.Integral():
			exact = BigIntOf(d, from)
		default:
			f := FloatOf(d, from)
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return Datum{}
			}
			exact, _ = new(big.Float).SetFloat64(math.Trunc(f)).Int(nil)
		}
		out, _ := WrapBig(exact, to)
		return out
	case to.Complex():
		return Datum{Cmplx: roundComplex(to, ComplexOf(d, from))}
	default:
		return Datum{Float: roundFloat(to, FloatOf(d, from))}
	}
}

func isZero(d Datum, k kind.Kind) bool {
	switch {
	case k == kind.Bool:
		return !d.Bool
	case k.Signed():
		return d.Int == 0
	case k.Unsigned():
		return d.Uint == 0
	case k.Complex():
		return d.Cmplx == 0
	default:
		return d.Float == 0
	}
}
