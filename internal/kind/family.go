package kind

// Family describes broad categories of kinds an operator accepts.
type Family uint16

const (
	FamilyNone Family = 0
	FamilyBool Family = 1 << iota
	FamilySigned
	FamilyUnsigned
	FamilyFloat
	FamilyComplex
)

const (
	FamilyIntegral = FamilySigned | FamilyUnsigned
	FamilyInexact  = FamilyFloat | FamilyComplex
	FamilyNumeric  = FamilyIntegral | FamilyInexact
	FamilyAny      = FamilyBool | FamilyNumeric
)

func (k Kind) Family() Family {
	switch k {
	case Bool:
		return FamilyBool
	case Int8, Int16, Int32, Int64:
		return FamilySigned
	case Uint8, Uint16, Uint32, Uint64:
		return FamilyUnsigned
	case Float16, Float32, Float64, LongDouble:
		return FamilyFloat
	case Complex64, Complex128, LongComplex:
		return FamilyComplex
	default:
		return FamilyNone
	}
}

// Signed reports whether the kind is a signed integer.
func (k Kind) Signed() bool { return k.Family() == FamilySigned }

// Unsigned reports whether the kind is an unsigned integer.
func (k Kind) Unsigned() bool { return k.Family() == FamilyUnsigned }

// Integral reports whether the kind stores integers.
func (k Kind) Integral() bool { return k.Family()&FamilyIntegral != 0 }

// Inexact reports whether the kind stores floating or complex values.
func (k Kind) Inexact() bool { return k.Family()&FamilyInexact != 0 }

// Complex reports whether the kind stores complex values.
func (k Kind) Complex() bool { return k.Family() == FamilyComplex }
