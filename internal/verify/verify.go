// Package verify audits promotion-mode drift: it resolves a fixed probe set
// under both the legacy and the weak mode and reports every probe whose
// result kind differs between the two.
package verify

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sort"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"castor/internal/kind"
	"castor/internal/operand"
	"castor/internal/promote"
)

// Status tracks one probe through the audit.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusDrift
)

// Event reports probe progress to an optional sink.
type Event struct {
	Probe  string
	Status Status
}

// Sink receives progress events.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events to a channel. A nil channel drops them.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// Finding records one probe whose result kind depends on the mode. A mode
// that failed to resolve at all (out-of-range literal) leaves its kind
// Invalid and explains itself in Note.
type Finding struct {
	Probe  string
	Op     kind.Op
	Legacy kind.Kind
	Weak   kind.Kind
	Note   string
}

// Options configures an audit run.
type Options struct {
	// Jobs caps worker parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Ops lists the operations to probe; empty means add.
	Ops []kind.Op
	// Progress receives per-probe events when non-nil.
	Progress Sink
}

// Report summarizes one audit run.
type Report struct {
	Probes   uint32
	Findings []Finding
}

type probe struct {
	name string
	a, b operand.Operand
}

// weakLiterals covers the interesting literal shapes: small and negative
// integers, one past uint8, 2**63, a small float and a float past float32.
func weakLiterals() []struct {
	name string
	w    operand.Weak
} {
	twoTo63 := new(big.Int).Lsh(big.NewInt(1), 63)
	return []struct {
		name string
		w    operand.Weak
	}{
		{"int 1", operand.WeakInt(1)},
		{"int -1", operand.WeakInt(-1)},
		{"int 300", operand.WeakInt(300)},
		{"int 2**63", operand.WeakBig(twoTo63)},
		{"float 0.5", operand.WeakFloat(0.5)},
		{"float 3e100", operand.WeakFloat(3e100)},
	}
}

func unitScalar(k kind.Kind) operand.Scalar {
	switch {
	case k == kind.Bool:
		return operand.ScalarBool(true)
	case k.Integral():
		return operand.ScalarInt(k, 1)
	case k.Complex():
		return operand.ScalarComplex(k, 1)
	default:
		return operand.ScalarFloat(k, 1)
	}
}

// buildProbes enumerates every fixed kind pair plus each fixed kind against
// each weak literal, both as a scalar and as a one-element array.
func buildProbes() []probe {
	var probes []probe
	for _, a := range kind.AllKinds {
		for _, b := range kind.AllKinds {
			probes = append(probes, probe{
				name: fmt.Sprintf("%s scalar, %s scalar", a, b),
				a:    unitScalar(a),
				b:    unitScalar(b),
			})
		}
		for _, lit := range weakLiterals() {
			probes = append(probes, probe{
				name: fmt.Sprintf("%s scalar, %s", a, lit.name),
				a:    unitScalar(a),
				b:    lit.w,
			})
			probes = append(probes, probe{
				name: fmt.Sprintf("%s array, %s", a, lit.name),
				a:    operand.NewArray(a, []int{1}, []operand.Datum{unitScalar(a).Datum}),
				b:    lit.w,
			})
		}
	}
	return probes
}

// ProbeCount reports how many probes an audit run covers, for progress
// displays that need the total up front.
func ProbeCount() int {
	return len(buildProbes())
}

// Run executes the audit. Probes run in parallel; findings come back sorted
// by probe name for deterministic output.
func Run(ctx context.Context, opts Options) (Report, error) {
	probes := buildProbes()
	ops := opts.Ops
	if len(ops) == 0 {
		ops = []kind.Op{kind.OpAdd}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	total, err := safecast.Conv[uint32](len(probes))
	if err != nil {
		panic(fmt.Errorf("probe count overflow: %w", err))
	}

	if opts.Progress != nil {
		for _, p := range probes {
			opts.Progress.Send(Event{Probe: p.name, Status: StatusQueued})
		}
	}

	// Per-probe result slots keep the workers lock-free.
	results := make([][]Finding, len(probes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(probes)))
	for i, p := range probes {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if opts.Progress != nil {
				opts.Progress.Send(Event{Probe: p.name, Status: StatusWorking})
			}
			var found []Finding
			for _, op := range ops {
				if f, drift := auditOne(p, op); drift {
					found = append(found, f)
				}
			}
			results[i] = found
			status := StatusDone
			if len(found) > 0 {
				status = StatusDrift
			}
			if opts.Progress != nil {
				opts.Progress.Send(Event{Probe: p.name, Status: status})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Probes: total}
	for _, found := range results {
		report.Findings = append(report.Findings, found...)
	}
	sort.Slice(report.Findings, func(i, j int) bool {
		if report.Findings[i].Probe != report.Findings[j].Probe {
			return report.Findings[i].Probe < report.Findings[j].Probe
		}
		return report.Findings[i].Op < report.Findings[j].Op
	})
	return report, nil
}

// auditOne resolves a probe under both modes. A drift is a differing common
// kind, or a resolution error in exactly one mode.
func auditOne(p probe, op kind.Op) (Finding, bool) {
	legacyRes, legacyErr := promote.Resolve(promote.ModeLegacy, p.a, p.b, op)
	weakRes, weakErr := promote.Resolve(promote.ModeWeak, p.a, p.b, op)

	if legacyErr != nil && weakErr != nil {
		return Finding{}, false
	}
	if legacyErr == nil && weakErr == nil && legacyRes.Common == weakRes.Common {
		return Finding{}, false
	}

	f := Finding{Probe: p.name, Op: op}
	if legacyErr != nil {
		f.Note = "legacy: " + legacyErr.Error()
	} else {
		f.Legacy = legacyRes.Common
	}
	if weakErr != nil {
		f.Note = "weak: " + weakErr.Error()
	} else {
		f.Weak = weakRes.Common
	}
	return f, true
}
