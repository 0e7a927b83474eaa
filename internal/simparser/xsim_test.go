package simparser

import (
	"reflect"
	"testing"
)

func TestXsimParserParse(t *testing.T) {
	t.Parallel()

	parser := &XsimParser{}

	tests := []struct {
		name          string
		output        string
		wantPassed    bool
		wantPassCount int
		wantFailCount int
	}{
		{
			name:          "counts with zero failures",
			output:        "Results: 42 passed, 0 failed",
			wantPassed:    true,
			wantPassCount: 42,
			wantFailCount: 0,
		},
		{
			name:          "nonzero failures",
			output:        "Results: 0 passed, 3 failed",
			wantPassed:    false,
			wantPassCount: 0,
			wantFailCount: 3,
		},
		{
			name:          "all passed marker overrides fail count",
			output:        "ALL TESTS PASSED\n1 passed, 2 failed",
			wantPassed:    true,
			wantPassCount: 1,
			wantFailCount: 2,
		},
		{
			name:       "test passed marker without counts",
			output:     "TEST PASSED",
			wantPassed: true,
		},
		{
			name:          "test passed marker with failures",
			output:        "TEST PASSED\n0 passed, 1 failed",
			wantPassed:    false,
			wantFailCount: 1,
		},
		{
			name:       "empty output",
			output:     "",
			wantPassed: false,
		},
		{
			name:       "lowercase marker does not match",
			output:     "all tests passed",
			wantPassed: false,
		},
		{
			name:          "uppercase counts match",
			output:        "5 PASSED, 0 FAILED",
			wantPassed:    true,
			wantPassCount: 5,
		},
		{
			name:       "zero passed zero failed",
			output:     "0 passed, 0 failed",
			wantPassed: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parser.Parse("smoke", tt.output)

			if got.Test != "smoke" {
				t.Errorf("Test = %q, want %q", got.Test, "smoke")
			}
			if got.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", got.Passed, tt.wantPassed)
			}
			if got.PassCount != tt.wantPassCount {
				t.Errorf("PassCount = %d, want %d", got.PassCount, tt.wantPassCount)
			}
			if got.FailCount != tt.wantFailCount {
				t.Errorf("FailCount = %d, want %d", got.FailCount, tt.wantFailCount)
			}
		})
	}
}

func TestXsimParserErrorLines(t *testing.T) {
	t.Parallel()

	parser := &XsimParser{}
	output := "starting\n[ERROR] bus fault at 0x10\nsome noise\nUVM [error] scoreboard mismatch\nplain line"

	got := parser.Parse("smoke", output)

	// Matches start at the bracket, so any prefix before it is dropped.
	want := []string{
		"[ERROR] bus fault at 0x10",
		"[error] scoreboard mismatch",
	}
	if !reflect.DeepEqual(got.Errors, want) {
		t.Errorf("Errors = %v, want %v", got.Errors, want)
	}
}

func TestXsimParserDuration(t *testing.T) {
	t.Parallel()

	parser := &XsimParser{}

	got := parser.Parse("smoke", "ALL TESTS PASSED\nSimulation completed at 123456 ns")
	if got.DurationNs != 123456 {
		t.Errorf("DurationNs = %d, want 123456", got.DurationNs)
	}

	got = parser.Parse("smoke", "ALL TESTS PASSED")
	if got.DurationNs != 0 {
		t.Errorf("DurationNs = %d, want 0 when no completion line present", got.DurationNs)
	}
}

func TestXsimParserDeterministic(t *testing.T) {
	t.Parallel()

	parser := &XsimParser{}
	output := "3 passed, 0 failed\n[ERROR] late warning\nSimulation completed at 99 ns"

	first := parser.Parse("smoke", output)
	second := parser.Parse("smoke", output)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs: %+v vs %+v", first, second)
	}
}
