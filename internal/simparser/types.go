// Package simparser provides result classification for simulator output.
package simparser

// Outcome holds the structured pass/fail result for one test-case invocation.
// An Outcome is immutable once produced.
type Outcome struct {
	Test       string
	Passed     bool
	PassCount  int
	FailCount  int
	Errors     []string // ERROR-marked lines in appearance order, unbounded
	DurationNs int64
	Sidecar    map[string]string // auxiliary KEY=VALUE data, nil when absent
}

// Parser defines the interface for simulator output classifiers.
type Parser interface {
	// Parse extracts a structured outcome from the simulator's free-form output.
	Parse(testName, output string) Outcome
	// Name returns the name of the parser.
	Name() string
}
