package main

import (
	"testing"

	"castor/internal/kind"
	"castor/internal/operand"
)

func TestParseOperandForms(t *testing.T) {
	got, err := parseOperand("uint8")
	if err != nil {
		t.Fatalf("kind name: %v", err)
	}
	if s, ok := got.(operand.Scalar); !ok || s.Kind != kind.Uint8 || s.Datum.Uint != 1 {
		t.Fatalf("uint8: got %#v", got)
	}

	got, err = parseOperand("int16:-5")
	if err != nil {
		t.Fatalf("kind:value: %v", err)
	}
	if s, ok := got.(operand.Scalar); !ok || s.Kind != kind.Int16 || s.Datum.Int != -5 {
		t.Fatalf("int16:-5: got %#v", got)
	}

	got, err = parseOperand("int32[1,2,3]")
	if err != nil {
		t.Fatalf("array literal: %v", err)
	}
	arr, ok := got.(*operand.Array)
	if !ok || arr.Kind != kind.Int32 || arr.Size() != 3 || arr.Data[2].Int != 3 {
		t.Fatalf("int32[1,2,3]: got %#v", got)
	}

	got, err = parseOperand("300")
	if err != nil {
		t.Fatalf("int literal: %v", err)
	}
	if w, ok := got.(operand.Weak); !ok || w.IsFloat || w.Int.Int64() != 300 {
		t.Fatalf("300: got %#v", got)
	}

	got, err = parseOperand("3e100")
	if err != nil {
		t.Fatalf("float literal: %v", err)
	}
	if w, ok := got.(operand.Weak); !ok || !w.IsFloat || w.Float != 3e100 {
		t.Fatalf("3e100: got %#v", got)
	}
}

func TestParseOperandRejectsGarbage(t *testing.T) {
	for _, arg := range []string{"", "notakind", "uint8:huge", "uint8:300", "int32[]", "int32[a]"} {
		if _, err := parseOperand(arg); err == nil {
			t.Fatalf("%q must not parse", arg)
		}
	}
}
