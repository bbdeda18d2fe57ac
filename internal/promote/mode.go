package promote

import "sync"

// Mode is the process-wide promotion policy.
type Mode uint8

const (
	// ModeLegacy keeps the historical value-based promotion rules.
	ModeLegacy Mode = iota
	// ModeWeak defers weak scalars to the fixed operand's kind.
	ModeWeak
	// ModeWeakAndWarn behaves like ModeWeak and additionally advises when
	// the result kind differs from what legacy promotion would produce.
	ModeWeakAndWarn
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeWeak:
		return "weak"
	case ModeWeakAndWarn:
		return "weak_and_warn"
	}
	return "unknown"
}

// ModeFromName resolves a mode by name.
func ModeFromName(name string) (Mode, bool) {
	switch name {
	case "legacy":
		return ModeLegacy, true
	case "weak":
		return ModeWeak, true
	case "weak_and_warn":
		return ModeWeakAndWarn, true
	}
	return ModeLegacy, false
}

var (
	modeMu      sync.Mutex
	currentMode = ModeLegacy
)

// Current returns the active promotion mode.
func Current() Mode {
	modeMu.Lock()
	defer modeMu.Unlock()
	return currentMode
}

// Set replaces the active mode and returns the previous one.
func Set(m Mode) Mode {
	modeMu.Lock()
	defer modeMu.Unlock()
	prev := currentMode
	currentMode = m
	return prev
}

// Scoped installs a mode and returns a restore function for defer. Callers
// must serialize mode changes; concurrent mutation is undefined.
func Scoped(m Mode) func() {
	prev := Set(m)
	return func() { Set(prev) }
}
