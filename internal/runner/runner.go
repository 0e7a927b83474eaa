// Package runner orchestrates the compile, elaborate and simulate pipeline
// across the registered test scenarios.
package runner

import (
	"context"
	"time"

	"github.com/hdlforge/simflow/internal/config"
	"github.com/hdlforge/simflow/internal/output"
	"github.com/hdlforge/simflow/internal/report"
	"github.com/hdlforge/simflow/internal/simparser"
	"github.com/hdlforge/simflow/internal/toolchain"
)

// Toolchain is the pipeline the runner drives. Stage outcomes are returned
// as structured results, never raised; an error means the invocation itself
// failed (spawn failure), which is fatal for the whole run.
type Toolchain interface {
	Compile(ctx context.Context, files []string) (toolchain.StageResult, error)
	Elaborate(ctx context.Context) (toolchain.StageResult, error)
	Simulate(ctx context.Context, testName string) (toolchain.StageResult, error)
}

// SourceResolver computes the ordered compilation source set.
type SourceResolver interface {
	Resolve() []string
}

// state tracks pipeline progress. Stages execute strictly sequentially
// because each depends on the previous stage's on-disk artifact; this is a
// correctness requirement, not a scheduling choice.
type state int

const (
	stateNotStarted state = iota
	stateCompiled
	stateElaborated
	stateSimulating
	stateFinished
	stateAborted
)

// Runner orchestrates "compile once, elaborate once, simulate per test".
// The compiled work library and elaborated snapshot are built exactly once
// per run and shared by every simulate invocation.
type Runner struct {
	tests    map[string]string // immutable test registry, injected at construction
	tc       Toolchain
	resolver SourceResolver
	parser   simparser.Parser
	sidecar  string // sidecar results file path; empty disables sidecar parsing
	out      *output.Writer

	state          state
	outcomes       map[string]report.TestOutcome
	order          []string // first-stored order, for stable summaries
	totalPassCount int
	totalFailCount int
	errors         []string
	start          time.Time
	end            time.Time
}

// New creates a Runner over the given test registry and pipeline.
func New(tests map[string]string, tc Toolchain, resolver SourceResolver, parser simparser.Parser, sidecar string, out *output.Writer) *Runner {
	return &Runner{
		tests:    tests,
		tc:       tc,
		resolver: resolver,
		parser:   parser,
		sidecar:  sidecar,
		out:      out,
		state:    stateNotStarted,
		outcomes: make(map[string]report.TestOutcome),
	}
}

// RunAll executes the requested tests and reports overall success. An empty
// request, or one containing the "all" sentinel, expands to every registered
// test. Compile or elaborate failure aborts the run with zero recorded
// outcomes; a simulate failure is terminal only for that one test.
func (r *Runner) RunAll(ctx context.Context, testNames []string) bool {
	r.start = time.Now()
	defer func() { r.end = time.Now() }()

	names := r.expand(testNames)

	files := r.resolver.Resolve()
	r.out.Info("found %d source files", len(files))

	res, err := r.tc.Compile(ctx, files)
	if !r.advance(toolchain.StageCompile, res, err, stateCompiled) {
		return false
	}

	res, err = r.tc.Elaborate(ctx)
	if !r.advance(toolchain.StageElaborate, res, err, stateElaborated) {
		return false
	}

	for _, name := range names {
		// An external interrupt stops the loop from issuing further
		// simulate calls; outcomes already produced stay valid.
		if ctx.Err() != nil {
			break
		}

		if _, ok := r.tests[name]; !ok {
			r.out.Warning("unknown test: %s", name)
			continue
		}

		r.state = stateSimulating
		if !r.runTest(ctx, name) {
			r.state = stateAborted
			return false
		}
	}

	r.state = stateFinished
	return r.overallPassed()
}

// advance validates a shared-stage result and moves the pipeline forward.
// Returns false after aborting the run.
func (r *Runner) advance(stage string, res toolchain.StageResult, err error, next state) bool {
	if err != nil {
		r.out.ErrorPrefix("%v", err)
		r.state = stateAborted
		return false
	}
	if !res.OK {
		// Raw output goes to the console for diagnosis; it is not part
		// of the persisted report.
		r.out.Error("%s", res.Output)
		r.state = stateAborted
		return false
	}
	r.state = next
	return true
}

// runTest simulates one registered test and records its outcome. Returns
// false only on an invocation-level failure, which aborts the run.
func (r *Runner) runTest(ctx context.Context, name string) bool {
	res, err := r.tc.Simulate(ctx, name)
	if err != nil {
		r.out.ErrorPrefix("%v", err)
		return false
	}

	if !res.OK {
		r.out.Error("%s", res.Output)
	}

	outcome := r.parser.Parse(name, res.Output)
	if res.TimedOut {
		// A timed-out test never counts as passed, whatever partial
		// output was captured before the kill.
		outcome.Passed = false
	}

	if r.sidecar != "" {
		sidecar, err := simparser.ParseSidecar(r.sidecar)
		if err != nil {
			r.out.Warning("could not parse results file: %v", err)
		} else {
			outcome.Sidecar = sidecar
		}
	}

	r.store(name, outcome)
	r.out.TestResult(name, outcome.Passed, outcome.PassCount, outcome.FailCount)
	return true
}

// store records an outcome under its test name (last write wins, supporting
// intra-session re-runs) and accumulates the session totals, which are never
// reset mid-run.
func (r *Runner) store(name string, outcome simparser.Outcome) {
	if _, exists := r.outcomes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.outcomes[name] = report.FromOutcome(outcome)

	r.totalPassCount += outcome.PassCount
	r.totalFailCount += outcome.FailCount
	r.errors = append(r.errors, outcome.Errors...)
}

// expand resolves the requested test names: an empty request or the "all"
// sentinel expands to every registered test; otherwise caller order is
// preserved.
func (r *Runner) expand(testNames []string) []string {
	expandAll := len(testNames) == 0
	for _, name := range testNames {
		if name == config.AllTestsName {
			expandAll = true
			break
		}
	}
	if !expandAll {
		return testNames
	}
	return config.SortedTestNames(r.tests)
}

// overallPassed is the logical AND of every stored outcome.
func (r *Runner) overallPassed() bool {
	for _, o := range r.outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// Results returns the recorded outcomes in first-run order.
func (r *Runner) Results() []report.TestOutcome {
	results := make([]report.TestOutcome, 0, len(r.order))
	for _, name := range r.order {
		results = append(results, r.outcomes[name])
	}
	return results
}

// Report assembles the final bounded report for the session.
func (r *Runner) Report() *report.RunReport {
	outcomes := make(map[string]report.TestOutcome, len(r.outcomes))
	for name, o := range r.outcomes {
		outcomes[name] = o
	}
	errs := make([]string, len(r.errors))
	copy(errs, r.errors)

	return report.Assemble(outcomes, r.totalPassCount, r.totalFailCount, errs, r.start, r.end)
}
