package kind

import "fmt"

// Kind identifies a numeric storage kind. The set is finite and a Kind
// attached to an array or typed scalar never changes after creation.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float16
	Float32
	Float64
	LongDouble
	Complex64
	Complex128
	LongComplex
)

// Width captures the storage width of a kind in bits.
type Width uint8

const (
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case LongDouble:
		return "longdouble"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case LongComplex:
		return "clongdouble"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Char returns the single-letter type code, matching the NumPy convention.
func (k Kind) Char() byte {
	switch k {
	case Bool:
		return '?'
	case Int8:
		return 'b'
	case Int16:
		return 'h'
	case Int32:
		return 'i'
	case Int64:
		return 'q'
	case Uint8:
		return 'B'
	case Uint16:
		return 'H'
	case Uint32:
		return 'I'
	case Uint64:
		return 'Q'
	case Float16:
		return 'e'
	case Float32:
		return 'f'
	case Float64:
		return 'd'
	case LongDouble:
		return 'g'
	case Complex64:
		return 'F'
	case Complex128:
		return 'D'
	case LongComplex:
		return 'G'
	default:
		return 0
	}
}

// Width returns the storage width of the kind in bits. LongDouble and
// LongComplex report the width of their host representation.
func (k Kind) Width() Width {
	switch k {
	case Bool, Int8, Uint8:
		return Width8
	case Int16, Uint16, Float16:
		return Width16
	case Int32, Uint32, Float32:
		return Width32
	case Int64, Uint64, Float64, LongDouble, Complex64:
		return Width64
	case Complex128, LongComplex:
		return Width128
	default:
		return 0
	}
}

// IntWidth returns the value width for integer kinds (0 otherwise).
func (k Kind) IntWidth() uint {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		return 0
	}
}

// Category orders kinds for value-based legacy promotion:
// bool < integer < floating < complex.
type Category uint8

const (
	CatInvalid Category = iota
	CatBool
	CatInt
	CatFloat
	CatComplex
)

func (k Kind) Category() Category {
	switch {
	case k == Bool:
		return CatBool
	case k.Family()&FamilyIntegral != 0:
		return CatInt
	case k.Family()&FamilyFloat != 0:
		return CatFloat
	case k.Family()&FamilyComplex != 0:
		return CatComplex
	default:
		return CatInvalid
	}
}

// floatRank orders floating kinds by precision: e < f < d < g. Complex
// kinds map onto the rank of their component float.
func (k Kind) floatRank() int {
	switch k {
	case Float16:
		return 0
	case Float32, Complex64:
		return 1
	case Float64, Complex128:
		return 2
	case LongDouble, LongComplex:
		return 3
	default:
		return -1
	}
}

var floatByRank = [...]Kind{Float16, Float32, Float64, LongDouble}
var complexByRank = [...]Kind{Complex64, Complex64, Complex128, LongComplex}

// HostFloatRouted reports whether conversions from big Python-level integers
// into this kind pass through the host float type. Those kinds raise on
// overflow instead of saturating. The boundary is empirical: d, D and G.
func (k Kind) HostFloatRouted() bool {
	switch k {
	case Float64, Complex128, LongComplex:
		return true
	default:
		return false
	}
}

// AllKinds lists every valid kind in declaration order.
var AllKinds = []Kind{
	Bool,
	Int8, Int16, Int32, Int64,
	Uint8, Uint16, Uint32, Uint64,
	Float16, Float32, Float64, LongDouble,
	Complex64, Complex128, LongComplex,
}

// AllInteger mirrors NumPy's typecodes["AllInteger"].
var AllInteger = []Kind{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64}

// AllFloat mirrors NumPy's typecodes["AllFloat"]: every inexact kind,
// complex included.
var AllFloat = []Kind{Float16, Float32, Float64, LongDouble, Complex64, Complex128, LongComplex}

// FromName resolves a kind by its canonical name. Char codes are accepted
// as one-letter names.
func FromName(name string) (Kind, bool) {
	for _, k := range AllKinds {
		if k.String() == name {
			return k, true
		}
		if len(name) == 1 && k.Char() == name[0] {
			return k, true
		}
	}
	return Invalid, false
}
