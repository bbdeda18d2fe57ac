package verify

import (
	"context"
	"testing"

	"castor/internal/kind"
)

func TestAuditFindsWeakDeference(t *testing.T) {
	report, err := Run(context.Background(), Options{Jobs: 4})
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	if report.Probes == 0 {
		t.Fatalf("no probes ran")
	}

	want := "float16 scalar, float 3e100"
	var hit *Finding
	for i := range report.Findings {
		if report.Findings[i].Probe == want {
			hit = &report.Findings[i]
			break
		}
	}
	if hit == nil {
		t.Fatalf("probe %q must drift between modes", want)
	}
	if hit.Legacy != kind.Float64 || hit.Weak != kind.Float16 {
		t.Fatalf("drift %q: legacy %v weak %v", want, hit.Legacy, hit.Weak)
	}
}

func TestSmallLiteralScalarsAgree(t *testing.T) {
	report, err := Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	// Value-based legacy promotion and weak deference both keep a fitting
	// literal in the fixed scalar's kind.
	for _, f := range report.Findings {
		if f.Probe == "uint8 scalar, int 1" {
			t.Fatalf("uint8 scalar + 1 must resolve uint8 in both modes: %+v", f)
		}
	}
}

func TestFixedPairsNeverDriftAsScalars(t *testing.T) {
	report, err := Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	for _, f := range report.Findings {
		if f.Probe == "int32 scalar, int64 scalar" {
			t.Fatalf("fixed scalar pair must agree across modes: %+v", f)
		}
	}
}

func TestFindingsAreSorted(t *testing.T) {
	report, err := Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	for i := 1; i < len(report.Findings); i++ {
		if report.Findings[i-1].Probe > report.Findings[i].Probe {
			t.Fatalf("findings out of order at %d: %q > %q",
				i, report.Findings[i-1].Probe, report.Findings[i].Probe)
		}
	}
}

func TestProgressEvents(t *testing.T) {
	ch := make(chan Event, 1<<14)
	_, err := Run(context.Background(), Options{Progress: ChannelSink{Ch: ch}})
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	close(ch)

	queued, finished := 0, 0
	for ev := range ch {
		switch ev.Status {
		case StatusQueued:
			queued++
		case StatusDone, StatusDrift:
			finished++
		}
	}
	if queued == 0 || queued != finished {
		t.Fatalf("queued %d finished %d, want equal and non-zero", queued, finished)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{Jobs: 1}); err == nil {
		t.Fatalf("cancelled audit must fail")
	}
}
