package ufunc

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"castor/internal/diag"
	"castor/internal/errstate"
	"castor/internal/kind"
	"castor/internal/operand"
	"castor/internal/promote"
)

func maxScalar(k kind.Kind) operand.Scalar {
	max := kind.IntMax(k)
	if k.Unsigned() {
		return operand.ScalarUint(k, max.Uint64())
	}
	return operand.ScalarInt(k, max.Int64())
}

func bigFromFloat(f float64) *big.Int {
	i, _ := new(big.Float).SetFloat64(f).Int(nil)
	return i
}

func mustScalar(t *testing.T, got operand.Operand) operand.Scalar {
	t.Helper()
	s, ok := got.(operand.Scalar)
	if !ok {
		t.Fatalf("expected scalar result, got %T", got)
	}
	return s
}

func mustArray(t *testing.T, got operand.Operand) *operand.Array {
	t.Helper()
	a, ok := got.(*operand.Array)
	if !ok {
		t.Fatalf("expected array result, got %T", got)
	}
	return a
}

func TestWeakScalarDefersToFixedKind(t *testing.T) {
	got, bag, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		operand.ScalarInt(kind.Uint8, 1), operand.WeakInt(2))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	s := mustScalar(t, got)
	if s.Kind != kind.Uint8 || s.Datum.Uint != 3 {
		t.Fatalf("uint8(1) + 2: got kind %v value %d", s.Kind, s.Datum.Uint)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestWeakFloatAgainstIntegerArray(t *testing.T) {
	got, bag, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		operand.ArrayFromInts(kind.Int32, 1, 2), operand.WeakFloat(0.5))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	arr := mustArray(t, got)
	if arr.Kind != kind.Float64 {
		t.Fatalf("int32 array + 0.5: got kind %v, want float64", arr.Kind)
	}
	if arr.Data[0].Float != 1.5 || arr.Data[1].Float != 2.5 {
		t.Fatalf("unexpected values %v", arr.Data)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestFixedScalarsPromoteByKind(t *testing.T) {
	got, _, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		operand.ArrayFromInts(kind.Uint8, 1), operand.ScalarInt(kind.Int64, 1))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	arr := mustArray(t, got)
	if arr.Kind != kind.Int64 || arr.Data[0].Int != 2 {
		t.Fatalf("uint8 array + int64 scalar: got kind %v value %d", arr.Kind, arr.Data[0].Int)
	}
}

func TestWeakFloatSaturatesSmallKind(t *testing.T) {
	got, bag, err := ApplyMode(promote.ModeWeakAndWarn, kind.OpAdd,
		operand.ScalarFloat(kind.Float32, 1), operand.WeakFloat(3e100))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	s := mustScalar(t, got)
	if s.Kind != kind.Float32 {
		t.Fatalf("got kind %v, want float32", s.Kind)
	}
	if !math.IsInf(s.Datum.Float, 1) {
		t.Fatalf("got %v, want +inf", s.Datum.Float)
	}
	if n := bag.CountCode(diag.PromDtypeChanged); n != 1 {
		t.Fatalf("dtype-change advisories: got %d, want 1", n)
	}
	if n := bag.CountCode(diag.OvfCastOverflow); n != 1 {
		t.Fatalf("cast overflow events: got %d, want 1", n)
	}
	if bag.Len() != 2 {
		t.Fatalf("diagnostics: got %d, want 2: %v", bag.Len(), bag.Items())
	}
}

func TestDtypeChangeAdvisory(t *testing.T) {
	got, bag, err := ApplyMode(promote.ModeWeakAndWarn, kind.OpAdd,
		operand.ScalarInt(kind.Uint8, 1), operand.WeakInt(2))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	s := mustScalar(t, got)
	if s.Kind != kind.Uint8 || s.Datum.Uint != 3 {
		t.Fatalf("got kind %v value %d", s.Kind, s.Datum.Uint)
	}
	ev, ok := bag.FindCode(diag.PromDtypeChanged)
	if !ok {
		t.Fatalf("dtype-change advisory missing")
	}
	if !strings.HasPrefix(ev.Message, "result dtype changed") {
		t.Fatalf("unexpected advisory message %q", ev.Message)
	}
}

func TestAdvisorySuppressesIntegerOverflow(t *testing.T) {
	defer errstate.Scoped(errstate.State{Over: errstate.Raise})()

	got, bag, err := ApplyMode(promote.ModeWeakAndWarn, kind.OpAdd,
		operand.ScalarInt(kind.Uint8, 100), operand.WeakInt(200))
	if err != nil {
		t.Fatalf("overflow must be suppressed on the advisory path: %v", err)
	}
	s := mustScalar(t, got)
	if s.Kind != kind.Uint8 || s.Datum.Uint != 44 {
		t.Fatalf("uint8(100) + 200: got kind %v value %d, want uint8 44", s.Kind, s.Datum.Uint)
	}
	if n := bag.CountCode(diag.PromDtypeChanged); n != 1 {
		t.Fatalf("dtype-change advisories: got %d, want 1", n)
	}
	if n := bag.CountCode(diag.OvfArithOverflow); n != 0 {
		t.Fatalf("arithmetic overflow must not be reported, got %d events", n)
	}
}

func TestComparisonExemptFromAdvisory(t *testing.T) {
	got, bag, err := ApplyMode(promote.ModeWeakAndWarn, kind.OpEq,
		operand.ArrayFromFloats(kind.Float32, 1), operand.ScalarFloat(kind.Float64, 2))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	arr := mustArray(t, got)
	if arr.Kind != kind.Bool {
		t.Fatalf("comparison result kind %v, want bool", arr.Kind)
	}
	if arr.Data[0].Bool {
		t.Fatalf("float32(1) == float64(2) must be false")
	}
	if bag.Len() != 0 {
		t.Fatalf("comparisons must not warn: %v", bag.Items())
	}
}

func TestIntegerScalarOverflowWarns(t *testing.T) {
	defer errstate.Scoped(errstate.State{Over: errstate.Warn})()

	for _, k := range kind.AllInteger {
		got, bag, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
			maxScalar(k), operand.WeakInt(1))
		if err != nil {
			t.Fatalf("%v: resolve failed: %v", k, err)
		}
		s := mustScalar(t, got)
		if s.Kind != k {
			t.Fatalf("%v: result kind %v", k, s.Kind)
		}
		if operand.BigIntOf(s.Datum, k).Cmp(kind.IntMin(k)) != 0 {
			t.Fatalf("%v: max + 1 must wrap to min, got %v", k, operand.BigIntOf(s.Datum, k))
		}
		if n := bag.CountCode(diag.OvfArithOverflow); n != 1 {
			t.Fatalf("%v: overflow events: got %d, want 1", k, n)
		}
		if ev, _ := bag.FindCode(diag.OvfArithOverflow); !strings.Contains(ev.Message, "scalar") {
			t.Fatalf("%v: message must name scalar arithmetic, got %q", k, ev.Message)
		}
	}
}

func TestIntegerArrayOverflowSilent(t *testing.T) {
	defer errstate.Scoped(errstate.State{Over: errstate.Warn})()

	for _, k := range kind.AllInteger {
		d := maxScalar(k).Datum
		arr := operand.NewArray(k, []int{3}, []operand.Datum{d, d, d})
		got, bag, err := ApplyMode(promote.ModeWeak, kind.OpAdd, arr, operand.WeakInt(1))
		if err != nil {
			t.Fatalf("%v: resolve failed: %v", k, err)
		}
		out := mustArray(t, got)
		if operand.BigIntOf(out.Data[2], k).Cmp(kind.IntMin(k)) != 0 {
			t.Fatalf("%v: array max + 1 must wrap to min", k)
		}
		if bag.Len() != 0 {
			t.Fatalf("%v: array overflow must be silent, got %v", k, bag.Items())
		}
	}
}

func TestIntegerScalarOverflowRaises(t *testing.T) {
	defer errstate.Scoped(errstate.State{Over: errstate.Raise})()

	_, _, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		maxScalar(kind.Int8), operand.WeakInt(1))
	var fpe *FloatingPointError
	if !errors.As(err, &fpe) {
		t.Fatalf("raise policy: got %v, want FloatingPointError", err)
	}
}

func TestIntegerScalarOverflowIgnored(t *testing.T) {
	defer errstate.Scoped(errstate.State{Over: errstate.Ignore})()

	_, bag, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		maxScalar(kind.Int8), operand.WeakInt(1))
	if err != nil {
		t.Fatalf("ignore policy must not fail: %v", err)
	}
	if bag.Len() != 0 {
		t.Fatalf("ignore policy must not warn: %v", bag.Items())
	}
}

func TestHugeIntegerAgainstInexactKinds(t *testing.T) {
	defer errstate.Scoped(errstate.State{Over: errstate.Warn})()

	for _, k := range kind.AllFloat {
		tooBig := new(big.Int).Mul(bigFromFloat(kind.FloatMax(k)), big.NewInt(2))
		var one operand.Operand = operand.ScalarFloat(k, 1)
		if k.Complex() {
			one = operand.ScalarComplex(k, 1)
		}
		got, bag, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
			one, operand.WeakBig(tooBig))

		if k.HostFloatRouted() {
			var ovf *operand.OverflowError
			if !errors.As(err, &ovf) {
				t.Fatalf("%v: got %v, want OverflowError", k, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("%v: resolve failed: %v", k, err)
		}
		s := mustScalar(t, got)
		if !operand.IsInf(s.Datum, k) {
			t.Fatalf("%v: saturating conversion must yield inf", k)
		}
		if n := bag.CountCode(diag.OvfCastOverflow); n != 1 {
			t.Fatalf("%v: cast overflow events: got %d, want 1", k, n)
		}
	}
}

func TestWeakIntegerConversionErrors(t *testing.T) {
	_, _, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		operand.ScalarInt(kind.Uint8, 1), operand.WeakInt(300))
	var ovf *operand.OverflowError
	if !errors.As(err, &ovf) {
		t.Fatalf("uint8 + 300: got %v, want OverflowError", err)
	}
	if !strings.Contains(ovf.Msg, "uint8") {
		t.Fatalf("error must name the target kind, got %q", ovf.Msg)
	}

	_, _, err = ApplyMode(promote.ModeWeak, kind.OpAdd,
		operand.ScalarInt(kind.Uint8, 1), operand.WeakInt(-1))
	if !errors.As(err, &ovf) {
		t.Fatalf("uint8 + (-1): got %v, want OverflowError", err)
	}
	if !strings.Contains(ovf.Msg, "unsigned") {
		t.Fatalf("error must name the unsigned constraint, got %q", ovf.Msg)
	}
}

func TestLegacyBigLiteralRegression(t *testing.T) {
	twoTo63 := new(big.Int).Lsh(big.NewInt(1), 63)

	got, bag, err := ApplyMode(promote.ModeLegacy, kind.OpAdd,
		operand.ZeroDim(operand.ScalarInt(kind.Int64, 1)), operand.WeakBig(twoTo63))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	arr := mustArray(t, got)
	if arr.Kind != kind.Float64 {
		t.Fatalf("int64 array + 2**63: got kind %v, want float64", arr.Kind)
	}
	if want := math.Ldexp(1, 63) + 1; arr.Data[0].Float != want {
		t.Fatalf("got %v, want %v", arr.Data[0].Float, want)
	}
	if bag.Len() != 0 {
		t.Fatalf("legacy conversion must be silent: %v", bag.Items())
	}

	got, _, err = ApplyMode(promote.ModeLegacy, kind.OpAdd,
		operand.ScalarInt(kind.Int64, 1), operand.WeakBig(twoTo63))
	if err != nil {
		t.Fatalf("scalar form failed: %v", err)
	}
	if s := mustScalar(t, got); s.Kind != kind.Float64 {
		t.Fatalf("int64 scalar + 2**63: got kind %v, want float64", s.Kind)
	}
}

func TestTrueDivisionLandsInFloat64(t *testing.T) {
	got, _, err := ApplyMode(promote.ModeWeak, kind.OpDiv,
		operand.ScalarInt(kind.Int64, 1), operand.WeakInt(2))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	s := mustScalar(t, got)
	if s.Kind != kind.Float64 || s.Datum.Float != 0.5 {
		t.Fatalf("1 / 2: got kind %v value %v", s.Kind, s.Datum.Float)
	}
}

func TestShapeMismatchRejected(t *testing.T) {
	_, _, err := ApplyMode(promote.ModeWeak, kind.OpAdd,
		operand.ArrayFromInts(kind.Int32, 1, 2),
		operand.ArrayFromInts(kind.Int32, 1, 2, 3))
	if err == nil || !strings.Contains(err.Error(), "shape mismatch") {
		t.Fatalf("got %v, want shape mismatch", err)
	}
}

func TestApplyUsesProcessMode(t *testing.T) {
	defer promote.Scoped(promote.ModeWeakAndWarn)()

	_, bag, err := Apply(kind.OpAdd,
		operand.ScalarInt(kind.Uint8, 1), operand.WeakInt(2))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if n := bag.CountCode(diag.PromDtypeChanged); n != 1 {
		t.Fatalf("process mode not honored: %d advisories", n)
	}
}
