package operand

import (
	"math"
	"math/big"

	"castor/internal/kind"
)

// roundFloat normalizes a host float to the precision of the target kind.
// Values past the kind's finite range become signed infinity.
func roundFloat(k kind.Kind, v float64) float64 {
	switch k {
	case kind.Float16:
		return roundToHalf(v)
	case kind.Float32, kind.Complex64:
		return float64(float32(v))
	default:
		return v
	}
}

func roundComplex(k kind.Kind, v complex128) complex128 {
	if k == kind.Complex64 {
		return complex(float64(float32(real(v))), float64(float32(imag(v))))
	}
	return v
}

// ScalarBool builds a bool scalar.
func ScalarBool(v bool) Scalar {
	return Scalar{Kind: kind.Bool, Datum: Datum{Bool: v}}
}

// ScalarInt builds an integer scalar of the given kind. Unsigned kinds
// store the value's bit pattern in the unsigned slot.
func ScalarInt(k kind.Kind, v int64) Scalar {
	if k.Unsigned() {
		return Scalar{Kind: k, Datum: Datum{Uint: uint64(v)}}
	}
	return Scalar{Kind: k, Datum: Datum{Int: v}}
}

// ScalarUint builds an unsigned integer scalar.
func ScalarUint(k kind.Kind, v uint64) Scalar {
	return Scalar{Kind: k, Datum: Datum{Uint: v}}
}

// ScalarFloat builds a floating scalar, rounded to the kind's precision.
func ScalarFloat(k kind.Kind, v float64) Scalar {
	return Scalar{Kind: k, Datum: Datum{Float: roundFloat(k, v)}}
}

// ScalarComplex builds a complex scalar, rounded to the kind's precision.
func ScalarComplex(k kind.Kind, v complex128) Scalar {
	return Scalar{Kind: k, Datum: Datum{Cmplx: roundComplex(k, v)}}
}

// NewArray wraps existing data. A nil shape makes a 0-d array over one
// element.
func NewArray(k kind.Kind, shape []int, data []Datum) *Array {
	return &Array{Kind: k, Shape: shape, Data: data}
}

// ArrayFromInts builds a 1-d integer array.
func ArrayFromInts(k kind.Kind, vs ...int64) *Array {
	data := make([]Datum, len(vs))
	for i, v := range vs {
		data[i] = ScalarInt(k, v).Datum
	}
	return &Array{Kind: k, Shape: []int{len(vs)}, Data: data}
}

// ArrayFromFloats builds a 1-d floating array.
func ArrayFromFloats(k kind.Kind, vs ...float64) *Array {
	data := make([]Datum, len(vs))
	for i, v := range vs {
		data[i] = ScalarFloat(k, v).Datum
	}
	return &Array{Kind: k, Shape: []int{len(vs)}, Data: data}
}

// ZeroDim builds a 0-d array holding one scalar, the shape of np.array(1).
func ZeroDim(s Scalar) *Array {
	return &Array{Kind: s.Kind, Shape: nil, Data: []Datum{s.Datum}}
}

// WeakInt builds a weak scalar from a machine integer literal.
func WeakInt(v int64) Weak {
	return Weak{Int: big.NewInt(v)}
}

// WeakBig builds a weak scalar from an arbitrary-precision literal.
func WeakBig(v *big.Int) Weak {
	return Weak{Int: new(big.Int).Set(v)}
}

// WeakFloat builds a weak scalar from a float literal.
func WeakFloat(v float64) Weak {
	return Weak{IsFloat: true, Float: v}
}

// BigIntOf reads an integer datum as a big integer.
func BigIntOf(d Datum, k kind.Kind) *big.Int {
	if k.Unsigned() {
		return new(big.Int).SetUint64(d.Uint)
	}
	return big.NewInt(d.Int)
}

// FloatOf reads a datum as a host float.
func FloatOf(d Datum, k kind.Kind) float64 {
	switch {
	case k == kind.Bool:
		if d.Bool {
			return 1
		}
		return 0
	case k.Signed():
		return float64(d.Int)
	case k.Unsigned():
		return float64(d.Uint)
	case k.Complex():
		return real(d.Cmplx)
	default:
		return d.Float
	}
}

// ComplexOf reads a datum as a host complex value.
func ComplexOf(d Datum, k kind.Kind) complex128 {
	if k.Complex() {
		return d.Cmplx
	}
	return complex(FloatOf(d, k), 0)
}

// IsInf reports whether an inexact datum holds an infinite component.
func IsInf(d Datum, k kind.Kind) bool {
	if !k.Inexact() {
		return false
	}
	if k.Complex() {
		return math.IsInf(real(d.Cmplx), 0) || math.IsInf(imag(d.Cmplx), 0)
	}
	return math.IsInf(d.Float, 0)
}

func datumFromBig(v *big.Int, k kind.Kind) Datum {
	if k.Unsigned() {
		return Datum{Uint: v.Uint64()}
	}
	return Datum{Int: v.Int64()}
}
