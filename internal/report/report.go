// Package report assembles the final bounded, durable run report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hdlforge/simflow/internal/simparser"
)

// MaxErrors bounds the report's error list. Only the first MaxErrors
// session-wide ERROR lines are persisted, in insertion order.
const MaxErrors = 50

// TestOutcome is the persisted per-test record.
type TestOutcome struct {
	Test       string            `json:"test"`
	Passed     bool              `json:"passed"`
	PassCount  int               `json:"pass_count"`
	FailCount  int               `json:"fail_count"`
	Errors     []string          `json:"errors"`
	DurationNs int64             `json:"duration_ns"`
	Results    map[string]string `json:"file_results,omitempty"`
}

// FromOutcome converts a parsed outcome into its persisted form.
func FromOutcome(o simparser.Outcome) TestOutcome {
	return TestOutcome{
		Test:       o.Test,
		Passed:     o.Passed,
		PassCount:  o.PassCount,
		FailCount:  o.FailCount,
		Errors:     o.Errors,
		DurationNs: o.DurationNs,
		Results:    o.Sidecar,
	}
}

// Summary aggregates the whole verification session.
type Summary struct {
	TotalTests     int  `json:"total_tests"`
	Passed         int  `json:"passed"`
	Failed         int  `json:"failed"`
	TotalPassCount int  `json:"total_pass_count"`
	TotalFailCount int  `json:"total_fail_count"`
	AllPassed      bool `json:"all_passed"`
}

// RunReport is the final aggregated record of a verification session.
type RunReport struct {
	Timestamp       string                 `json:"timestamp"`
	DurationSeconds float64                `json:"duration_seconds"`
	Summary         Summary                `json:"summary"`
	Tests           map[string]TestOutcome `json:"tests"`
	Errors          []string               `json:"errors"`
}

// Assemble builds the report from the per-test outcome map, the cumulative
// session check counts, and the session-wide error list. The error list is
// truncated to its first MaxErrors entries in original order.
func Assemble(outcomes map[string]TestOutcome, totalPassCount, totalFailCount int, errs []string, start, end time.Time) *RunReport {
	passed := 0
	for _, o := range outcomes {
		if o.Passed {
			passed++
		}
	}
	failed := len(outcomes) - passed

	if len(errs) > MaxErrors {
		errs = errs[:MaxErrors]
	}

	return &RunReport{
		Timestamp:       end.Format(time.RFC3339),
		DurationSeconds: end.Sub(start).Seconds(),
		Summary: Summary{
			TotalTests:     len(outcomes),
			Passed:         passed,
			Failed:         failed,
			TotalPassCount: totalPassCount,
			TotalFailCount: totalFailCount,
			AllPassed:      failed == 0,
		},
		Tests:  outcomes,
		Errors: errs,
	}
}

// WriteJSON persists the report to path.
func (r *RunReport) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
