package diag

import "testing"

func TestBagAddAndCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewWarning(PromDtypeChanged, "result dtype changed")) {
		t.Fatalf("first add must succeed")
	}
	if !b.Add(NewWarning(OvfArithOverflow, "overflow encountered")) {
		t.Fatalf("second add must succeed")
	}
	if b.Add(NewWarning(OvfCastOverflow, "overflow encountered in cast")) {
		t.Fatalf("add past cap must fail")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	b := NewBag(1)
	b.Add(NewWarning(PromDtypeChanged, "result dtype changed"))
	if b.Cap() != 1 {
		t.Fatalf("cap = %d", b.Cap())
	}

	other := NewBag(2)
	other.Add(NewWarning(OvfArithOverflow, "overflow encountered"))
	other.Add(New(SevError, OvfCastOverflow, "overflow in cast"))

	b.Merge(other)
	if b.Len() != 3 {
		t.Fatalf("after merge len = %d", b.Len())
	}
	if b.Cap() < 3 {
		t.Fatalf("merge must grow the cap, got %d", b.Cap())
	}
	if b.Add(NewWarning(PromDtypeChanged, "one more")) {
		t.Fatalf("add at the grown cap must fail")
	}
	b.Merge(nil)
	if b.Len() != 3 {
		t.Fatalf("nil merge must be a no-op, len = %d", b.Len())
	}
}

func TestBagHasWarnings(t *testing.T) {
	b := NewBag(4)
	if b.HasWarnings() {
		t.Fatalf("empty bag must have no warnings")
	}
	b.Add(New(SevInfo, PromDtypeChanged, "note"))
	if b.HasWarnings() {
		t.Fatalf("info diagnostics are not warnings")
	}
	b.Add(NewWarning(OvfArithOverflow, "overflow encountered"))
	if !b.HasWarnings() {
		t.Fatalf("warning not reported")
	}
	if b.HasErrors() {
		t.Fatalf("no errors were added")
	}
}

func TestBagFindAndCountCode(t *testing.T) {
	b := NewBag(8)
	b.Add(NewWarning(PromDtypeChanged, "result dtype changed from uint8 to int64"))
	b.Add(NewWarning(OvfArithOverflow, "overflow encountered in scalar add"))

	d, ok := b.FindCode(PromDtypeChanged)
	if !ok {
		t.Fatalf("advisory not found")
	}
	if d.Severity != SevWarning {
		t.Fatalf("advisory severity = %v", d.Severity)
	}
	if got := b.CountCode(OvfArithOverflow); got != 1 {
		t.Fatalf("overflow count = %d", got)
	}
	if _, ok := b.FindCode(SnapTableDrift); ok {
		t.Fatalf("unexpected drift diagnostic")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(NewWarning(OvfArithOverflow, "overflow encountered"))
	b.Add(New(SevError, OvfCastOverflow, "overflow in cast"))
	b.Add(NewWarning(OvfArithOverflow, "overflow encountered"))

	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("after dedup len = %d", b.Len())
	}
	b.Sort()
	if b.Items()[0].Severity != SevError {
		t.Fatalf("errors must sort first, got %v", b.Items()[0])
	}
}
