// Package ufunc evaluates element-wise binary operations end to end: it
// resolves the result kind under the active promotion mode, casts operands
// to the common kind, runs the element loop, and applies the errstate
// overflow policy to what the arithmetic produced.
package ufunc
