package promote

import (
	"castor/internal/kind"
	"castor/internal/operand"
)

// weakCommonKind computes the common kind under weak promotion: a weak
// scalar defers entirely to a fixed-kind operand of the same or higher
// category. A weak float combined with an integer kind promotes through the
// default float64 instead. Two weak scalars use their default kinds, two
// fixed operands use the plain common-kind table.
func weakCommonKind(a, b operand.Operand) kind.Kind {
	aK, aFixed := operand.FixedKind(a)
	bK, bFixed := operand.FixedKind(b)

	switch {
	case aFixed && bFixed:
		return kind.Promote(aK, bK)
	case !aFixed && !bFixed:
		wa := a.(operand.Weak)
		wb := b.(operand.Weak)
		return kind.Promote(weakDefaultKind(wa), weakDefaultKind(wb))
	}

	fixed, weak := aK, b.(operand.Weak)
	if bFixed {
		fixed, weak = bK, a.(operand.Weak)
	}
	if fixed.Category() >= weakCategory(weak) {
		return fixed
	}
	return kind.Promote(fixed, weakDefaultKind(weak))
}
