package promote

import (
	"castor/internal/diag"
	"castor/internal/kind"
	"castor/internal/operand"
)

// Result describes one resolution: the storage kind of the result, the
// common kind operands are evaluated in, the legacy baseline used for the
// dtype-change advisory, and any diagnostic events. Converted weak literals
// are carried along so a weak scalar acquires a kind only as the transient
// output of this one call.
type Result struct {
	// Kind is the result's storage kind (Bool for comparisons).
	Kind kind.Kind
	// Common is the kind both operands are cast to for evaluation.
	Common kind.Kind
	// Legacy is the baseline the dtype-change advisory compares against:
	// legacy promotion with weak literals at their default kinds.
	Legacy kind.Kind
	// Events holds advisory and overflow diagnostics for this call.
	Events []diag.Diagnostic
	// ConvA/ConvB hold the converted literal when the corresponding
	// operand was weak.
	ConvA *operand.Datum
	ConvB *operand.Datum
}

// HasAdvisory reports whether the dtype-change advisory fired.
func (r Result) HasAdvisory() bool {
	_, ok := r.FindAdvisory()
	return ok
}

// FindAdvisory returns the dtype-change advisory event, when present.
func (r Result) FindAdvisory() (diag.Diagnostic, bool) {
	for _, ev := range r.Events {
		if ev.Code == diag.PromDtypeChanged {
			return ev, true
		}
	}
	return diag.Diagnostic{}, false
}
