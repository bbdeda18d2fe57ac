package kind

import (
	"math"
	"math/big"
)

// MaxFloat16 is the largest finite value representable in half precision.
const MaxFloat16 = 65504.0

var (
	bigOne = big.NewInt(1)
)

// IntMin returns the smallest representable value of an integer kind.
func IntMin(k Kind) *big.Int {
	if !k.Integral() {
		return nil
	}
	if k.Unsigned() {
		return new(big.Int)
	}
	// -2^(w-1)
	m := new(big.Int).Lsh(bigOne, k.IntWidth()-1)
	return m.Neg(m)
}

// IntMax returns the largest representable value of an integer kind.
func IntMax(k Kind) *big.Int {
	if !k.Integral() {
		return nil
	}
	w := k.IntWidth()
	if k.Signed() {
		w--
	}
	m := new(big.Int).Lsh(bigOne, w)
	return m.Sub(m, bigOne)
}

// FloatMax returns the largest finite magnitude of an inexact kind.
// Complex kinds report the bound of their component float.
func FloatMax(k Kind) float64 {
	switch k {
	case Float16:
		return MaxFloat16
	case Float32, Complex64:
		return math.MaxFloat32
	case Float64, LongDouble, Complex128, LongComplex:
		return math.MaxFloat64
	default:
		return 0
	}
}

// FitsInt reports whether the integer v is representable in kind k.
func FitsInt(v *big.Int, k Kind) bool {
	if !k.Integral() {
		return false
	}
	return v.Cmp(IntMin(k)) >= 0 && v.Cmp(IntMax(k)) <= 0
}

// FitsFloat reports whether the magnitude of v stays finite in kind k.
func FitsFloat(v float64, k Kind) bool {
	if !k.Inexact() {
		return false
	}
	if math.IsInf(v, 0) {
		return false
	}
	return math.Abs(v) <= FloatMax(k)
}

// MinScalarInt returns the smallest kind able to hold the integer literal,
// preferring unsigned kinds for non-negative values. Values past uint64
// fall back to float64, mirroring the legacy value-based rules.
func MinScalarInt(v *big.Int) Kind {
	if v.Sign() >= 0 {
		for _, k := range []Kind{Uint8, Uint16, Uint32, Uint64} {
			if FitsInt(v, k) {
				return k
			}
		}
		return Float64
	}
	for _, k := range []Kind{Int8, Int16, Int32, Int64} {
		if FitsInt(v, k) {
			return k
		}
	}
	return Float64
}

// MinScalarFloat returns the smallest float kind whose finite range covers
// the literal's magnitude. Precision loss is acceptable; only magnitude
// matters, as with NumPy's min_scalar_type.
func MinScalarFloat(v float64) Kind {
	a := math.Abs(v)
	switch {
	case a <= MaxFloat16:
		return Float16
	case a <= math.MaxFloat32:
		return Float32
	default:
		return Float64
	}
}

// DefaultIntKind returns the kind a Python-level integer assumes when no
// fixed-kind operand constrains it: int64 when it fits, uint64 next, and
// float64 for anything larger.
func DefaultIntKind(v *big.Int) Kind {
	if FitsInt(v, Int64) {
		return Int64
	}
	if FitsInt(v, Uint64) {
		return Uint64
	}
	return Float64
}
