// Package errstate holds the process-wide overflow policy, the analog of
// np.errstate(over=...). It is independent of the promotion mode: it only
// decides whether ordinary magnitude overflow is ignored, warned about, or
// raised.
package errstate

import "sync"

// Action selects what happens on magnitude overflow.
type Action uint8

const (
	Ignore Action = iota
	Warn
	Raise
)

func (a Action) String() string {
	switch a {
	case Ignore:
		return "ignore"
	case Warn:
		return "warn"
	case Raise:
		return "raise"
	}
	return "unknown"
}

// FromName resolves an action by name.
func FromName(name string) (Action, bool) {
	switch name {
	case "ignore":
		return Ignore, true
	case "warn":
		return Warn, true
	case "raise":
		return Raise, true
	}
	return Warn, false
}

// State is the full error-control configuration.
type State struct {
	Over Action
}

var (
	mu      sync.Mutex
	current = State{Over: Warn}
)

// Current returns the active state.
func Current() State {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Set replaces the active state and returns the previous one.
func Set(s State) State {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = s
	return prev
}

// Scoped installs a state and returns a restore function for defer.
// Callers must serialize scope changes; concurrent mutation is undefined.
func Scoped(s State) func() {
	prev := Set(s)
	return func() { Set(prev) }
}
