// Package operand models the values that promotion acts on: arrays with a
// fixed kind, typed scalars with a fixed kind, and weak scalars that carry
// only a Python-level literal. The three forms make up a sealed sum type;
// resolution pattern-matches on the form instead of inspecting runtime
// values.
package operand
