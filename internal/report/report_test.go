package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hdlforge/simflow/internal/simparser"
)

func TestAssembleSummary(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	outcomes := map[string]TestOutcome{
		"smoke":  {Test: "smoke", Passed: true, PassCount: 10},
		"stress": {Test: "stress", Passed: false, FailCount: 2},
	}

	r := Assemble(outcomes, 10, 2, []string{"[ERROR] x"}, start, end)

	if r.Summary.TotalTests != 2 {
		t.Errorf("TotalTests = %d, want 2", r.Summary.TotalTests)
	}
	if r.Summary.Passed != 1 || r.Summary.Failed != 1 {
		t.Errorf("Passed/Failed = %d/%d, want 1/1", r.Summary.Passed, r.Summary.Failed)
	}
	if r.Summary.AllPassed {
		t.Error("AllPassed = true, want false with a failing test")
	}
	if r.Summary.TotalPassCount != 10 || r.Summary.TotalFailCount != 2 {
		t.Errorf("TotalPassCount/TotalFailCount = %d/%d, want 10/2",
			r.Summary.TotalPassCount, r.Summary.TotalFailCount)
	}
	if r.DurationSeconds != 90 {
		t.Errorf("DurationSeconds = %v, want 90", r.DurationSeconds)
	}
	if r.Timestamp != "2026-03-01T12:01:30Z" {
		t.Errorf("Timestamp = %q", r.Timestamp)
	}
}

func TestAssembleEmptyRunIsVacuouslyPassed(t *testing.T) {
	t.Parallel()

	r := Assemble(map[string]TestOutcome{}, 0, 0, nil, time.Now(), time.Now())
	if !r.Summary.AllPassed {
		t.Error("AllPassed = false for empty run, want true")
	}
	if r.Summary.TotalTests != 0 {
		t.Errorf("TotalTests = %d, want 0", r.Summary.TotalTests)
	}
}

func TestAssembleTruncatesErrors(t *testing.T) {
	t.Parallel()

	errs := make([]string, 0, 75)
	for i := 0; i < 75; i++ {
		errs = append(errs, fmt.Sprintf("[ERROR] line %d", i))
	}

	r := Assemble(nil, 0, 0, errs, time.Now(), time.Now())

	if len(r.Errors) != MaxErrors {
		t.Fatalf("len(Errors) = %d, want %d", len(r.Errors), MaxErrors)
	}
	if r.Errors[0] != "[ERROR] line 0" || r.Errors[MaxErrors-1] != fmt.Sprintf("[ERROR] line %d", MaxErrors-1) {
		t.Error("error truncation did not keep the first entries in order")
	}
}

func TestFromOutcome(t *testing.T) {
	t.Parallel()

	o := simparser.Outcome{
		Test:       "smoke",
		Passed:     true,
		PassCount:  3,
		FailCount:  0,
		Errors:     []string{"[ERROR] tolerated"},
		DurationNs: 42,
		Sidecar:    map[string]string{"status": "PASS"},
	}

	got := FromOutcome(o)
	if got.Test != "smoke" || !got.Passed || got.PassCount != 3 || got.DurationNs != 42 {
		t.Errorf("FromOutcome() = %+v", got)
	}
	if got.Results["status"] != "PASS" {
		t.Errorf("Results = %v, want sidecar data carried over", got.Results)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "verification_report.json")
	r := Assemble(map[string]TestOutcome{
		"smoke": {Test: "smoke", Passed: true, PassCount: 1},
	}, 1, 0, nil, time.Now(), time.Now())

	if err := r.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("report file missing trailing newline")
	}

	var decoded RunReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if !decoded.Summary.AllPassed || decoded.Tests["smoke"].PassCount != 1 {
		t.Errorf("decoded report = %+v", decoded)
	}
}
