// Package diag collects structured diagnostic events emitted while
// resolving promotions and evaluating element-wise operations. Events are
// appended to a Bag owned by the caller instead of being signaled through
// ambient process state, so a single call's advisory and overflow events
// stay independently retrievable.
package diag
