package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()
	done := timer.Phase("load")
	time.Sleep(time.Millisecond)
	done("3 lines")

	report := timer.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "load" || report.Phases[0].Note != "3 lines" {
		t.Fatalf("unexpected phase: %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 || report.TotalMS <= 0 {
		t.Fatalf("durations must be positive: %+v", report)
	}
}

func TestNilTimerReport(t *testing.T) {
	var timer *Timer
	report := timer.Report()
	if len(report.Phases) != 0 || report.TotalMS != 0 {
		t.Fatalf("nil timer must produce an empty report, got %+v", report)
	}
	if report.Summary() != "" {
		t.Fatal("empty report must render an empty summary")
	}
}

func TestSummaryFormat(t *testing.T) {
	report := Report{
		TotalMS: 3.5,
		Phases: []PhaseReport{
			{Name: "load", DurationMS: 1.0, Note: "2 lines"},
			{Name: "check", DurationMS: 2.5},
		},
	}
	got := report.Summary()
	for _, want := range []string{"timings:", "load", "// 2 lines", "check", "total"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
