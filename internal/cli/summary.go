package cli

import (
	"fmt"

	"github.com/hdlforge/simflow/internal/report"
)

// printRunSummary prints the per-test verification summary to the console.
func printRunSummary(results []report.TestOutcome) {
	out.SummaryHeader("Verification Summary")

	if len(results) == 0 {
		out.FinalFailure("no test outcomes recorded")
		return
	}

	passed := 0
	failed := 0
	totalChecks := 0
	for _, res := range results {
		out.SummaryTest(res.Test, res.Passed, res.PassCount, res.FailCount)
		if res.Passed {
			passed++
		} else {
			failed++
		}
		totalChecks += res.PassCount + res.FailCount
	}

	out.Println("")
	out.SummaryItem("Tests", fmt.Sprintf("%d", len(results)))
	out.SummaryPassed("Passed", fmt.Sprintf("%d", passed))
	if failed > 0 {
		out.SummaryFailed("Failed", fmt.Sprintf("%d", failed))
	}
	out.SummaryItem("Checks", fmt.Sprintf("%d", totalChecks))

	if failed == 0 {
		out.FinalSuccess("ALL %d TESTS PASSED", len(results))
	} else {
		out.FinalFailure("%d/%d TESTS FAILED", failed, len(results))
	}
}
