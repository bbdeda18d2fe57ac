// Package promote resolves the storage kind of binary operations between
// arrays, typed scalars and weak scalars. Resolution is a pure function of
// the two operands, the operation class and the promotion mode; diagnostics
// are returned as structured events instead of being signaled ambiently.
package promote
