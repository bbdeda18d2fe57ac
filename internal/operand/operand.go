package operand

import (
	"math/big"

	"castor/internal/kind"
)

// Operand is the sealed union of array, typed-scalar and weak-scalar forms.
type Operand interface {
	isOperand()
}

// Datum is the storage slot for one element. Exactly one field group is
// active, selected by the owning kind's family. Inexact kinds keep their
// value pre-rounded to the kind's precision inside the float64/complex128
// host slot.
type Datum struct {
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Cmplx complex128
}

// Scalar is a typed scalar: a single datum with a fixed kind.
type Scalar struct {
	Kind  kind.Kind
	Datum Datum
}

// Array is an n-dimensional (possibly 0-d) container with a fixed kind.
type Array struct {
	Kind  kind.Kind
	Shape []int
	Data  []Datum
}

// Weak is a scalar without a pre-assigned kind: a plain integer or float
// literal. Its effective kind exists only as the output of one resolution.
type Weak struct {
	IsFloat bool
	Float   float64
	Int     *big.Int
}

func (Scalar) isOperand() {}
func (*Array) isOperand() {}
func (Weak) isOperand()   {}

// NDim returns the number of dimensions; 0 for 0-d arrays.
func (a *Array) NDim() int { return len(a.Shape) }

// Size returns the element count.
func (a *Array) Size() int { return len(a.Data) }

// Item returns the scalar view of a 0-d array (arr[()]).
func (a *Array) Item() Scalar {
	return Scalar{Kind: a.Kind, Datum: a.Data[0]}
}

// FixedKind returns the kind of a fixed-kind operand. Weak scalars have
// none.
func FixedKind(op Operand) (kind.Kind, bool) {
	switch o := op.(type) {
	case Scalar:
		return o.Kind, true
	case *Array:
		return o.Kind, true
	default:
		return kind.Invalid, false
	}
}

// IsZeroDim reports whether the operand is scalar-like for value-based
// legacy promotion: a scalar, a weak literal, or a 0-d array.
func IsZeroDim(op Operand) bool {
	if a, ok := op.(*Array); ok {
		return a.NDim() == 0
	}
	return true
}
