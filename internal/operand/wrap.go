package operand

import (
	"math/big"

	"castor/internal/kind"
)

var bigOne = big.NewInt(1)

// WrapBig reduces an exact integer into the target kind modulo its width,
// two's complement for signed kinds. The second result reports whether the
// value was out of range and actually wrapped.
func WrapBig(v *big.Int, k kind.Kind) (Datum, bool) {
	w := k.IntWidth()
	mod := new(big.Int).Lsh(bigOne, w)
	m := new(big.Int).Mod(v, mod)
	if k.Signed() {
		half := new(big.Int).Lsh(bigOne, w-1)
		if m.Cmp(half) >= 0 {
			m.Sub(m, mod)
		}
	}
	return datumFromBig(m, k), !kind.FitsInt(v, k)
}
