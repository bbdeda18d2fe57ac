package ufunc

import (
	"math"
	"math/big"

	"castor/internal/kind"
	"castor/internal/operand"
)

// arith evaluates one arithmetic element in the common kind. The second
// result reports magnitude overflow: a wrapped integer, or saturation to
// infinity from finite operands.
func arith(common kind.Kind, da, db operand.Datum, op kind.Op) (operand.Datum, bool) {
	switch {
	case common == kind.Bool:
		return boolArith(da, db, op), false
	case common.Integral():
		return intArith(common, da, db, op)
	case common.Complex():
		return complexArith(common, da, db, op)
	default:
		return floatArith(common, da, db, op)
	}
}

func boolArith(da, db operand.Datum, op kind.Op) operand.Datum {
	switch op {
	case kind.OpAdd:
		return operand.Datum{Bool: da.Bool || db.Bool}
	case kind.OpMul:
		return operand.Datum{Bool: da.Bool && db.Bool}
	default:
		return operand.Datum{}
	}
}

func intArith(common kind.Kind, da, db operand.Datum, op kind.Op) (operand.Datum, bool) {
	ea := operand.BigIntOf(da, common)
	eb := operand.BigIntOf(db, common)
	exact := new(big.Int)
	switch op {
	case kind.OpAdd:
		exact.Add(ea, eb)
	case kind.OpSub:
		exact.Sub(ea, eb)
	case kind.OpMul:
		exact.Mul(ea, eb)
	default:
		return operand.Datum{}, false
	}
	return operand.WrapBig(exact, common)
}

func floatArith(common kind.Kind, da, db operand.Datum, op kind.Op) (operand.Datum, bool) {
	fa, fb := da.Float, db.Float
	var r float64
	switch op {
	case kind.OpAdd:
		r = fa + fb
	case kind.OpSub:
		r = fa - fb
	case kind.OpMul:
		r = fa * fb
	case kind.OpDiv:
		r = fa / fb
	default:
		return operand.Datum{}, false
	}
	out := operand.Datum{Float: operand.ScalarFloat(common, r).Datum.Float}
	overflow := math.IsInf(out.Float, 0) &&
		!math.IsInf(fa, 0) && !math.IsInf(fb, 0)
	return out, overflow
}

func complexArith(common kind.Kind, da, db operand.Datum, op kind.Op) (operand.Datum, bool) {
	ca, cb := da.Cmplx, db.Cmplx
	var r complex128
	switch op {
	case kind.OpAdd:
		r = ca + cb
	case kind.OpSub:
		r = ca - cb
	case kind.OpMul:
		r = ca * cb
	case kind.OpDiv:
		r = ca / cb
	default:
		return operand.Datum{}, false
	}
	out := operand.ScalarComplex(common, r).Datum
	overflow := operand.IsInf(out, common) &&
		!operand.IsInf(da, common) && !operand.IsInf(db, common)
	return out, overflow
}

// compare evaluates one comparison element in the common kind.
func compare(common kind.Kind, da, db operand.Datum, op kind.Op) operand.Datum {
	var cmp int
	switch {
	case common == kind.Bool:
		cmp = boolCmp(da.Bool, db.Bool)
	case common.Integral():
		cmp = operand.BigIntOf(da, common).Cmp(operand.BigIntOf(db, common))
	case common.Complex():
		// Only equality is defined for complex kinds.
		if da.Cmplx == db.Cmplx {
			cmp = 0
		} else {
			cmp = 1
		}
	default:
		cmp = floatCmp(da.Float, db.Float)
	}
	var out bool
	switch op {
	case kind.OpEq:
		out = cmp == 0
	case kind.OpNe:
		out = cmp != 0
	case kind.OpLt:
		out = cmp < 0
	case kind.OpLe:
		out = cmp <= 0
	case kind.OpGt:
		out = cmp > 0
	case kind.OpGe:
		out = cmp >= 0
	}
	return operand.Datum{Bool: out}
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func floatCmp(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
