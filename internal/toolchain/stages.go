package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hdlforge/simflow/internal/config"
	simflowerrors "github.com/hdlforge/simflow/internal/errors"
	"github.com/hdlforge/simflow/internal/output"
)

// Toolchain subcommand executables.
const (
	compileTool   = "xvlog"
	elaborateTool = "xelab"
	simulateTool  = "xsim"
)

// Stage names used in results, errors and console output.
const (
	StageCompile   = "compile"
	StageElaborate = "elaborate"
	StageSimulate  = "simulate"
)

// simCompletedMarker is printed by the simulator on a clean stop. Some tool
// versions exit nonzero after a clean stop, so the marker counts as success.
const simCompletedMarker = "Simulation completed"

// StageResult is the structured outcome of one pipeline stage invocation.
// Stage outcomes are always returned as values, never raised, so the
// abort-vs-continue decision stays explicit at the call site.
type StageResult struct {
	Stage    string
	OK       bool
	ExitCode int
	TimedOut bool
	Output   string // combined stdout and stderr
}

// FailDetail describes why a stage failed, for console diagnostics.
func (r StageResult) FailDetail() string {
	if r.TimedOut {
		return "timed out"
	}
	if r.ExitCode != 0 {
		return fmt.Sprintf("exit code %d", r.ExitCode)
	}
	return "tool reported errors"
}

// Stages wraps the Invoker with stage-specific argument construction and
// success criteria.
type Stages struct {
	inv  *Invoker
	root string
	sim  *config.SimulationConfig
	out  *output.Writer
}

// NewStages creates the three-stage pipeline rooted at the project directory.
func NewStages(inv *Invoker, root string, sim *config.SimulationConfig, out *output.Writer) *Stages {
	return &Stages{
		inv:  inv,
		root: root,
		sim:  sim,
		out:  out,
	}
}

// Compile compiles the resolved source set into the work library.
func (s *Stages) Compile(ctx context.Context, files []string) (StageResult, error) {
	s.out.StageStart(StageCompile, "")

	workDir := filepath.Join(s.root, s.sim.WorkDir)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return StageResult{Stage: StageCompile}, simflowerrors.Wrap(err, "failed to create work directory")
	}

	args := []string{"-sv", "--work", "work=" + workDir}
	args = append(args, files...)

	res, err := s.inv.Run(ctx, compileTool, args...)
	if err != nil {
		return StageResult{Stage: StageCompile}, err
	}

	return s.finish(StageCompile, res, toolSucceeded(res)), nil
}

// Elaborate elaborates the compiled work library into the snapshot shared by
// every subsequent simulate invocation.
func (s *Stages) Elaborate(ctx context.Context) (StageResult, error) {
	s.out.StageStart(StageElaborate, "")

	workDir := filepath.Join(s.root, s.sim.WorkDir)
	args := []string{
		"-debug", "typical",
		"-L", "work=" + workDir,
		"work." + s.sim.TopModule,
		"-s", s.sim.Snapshot,
	}

	res, err := s.inv.Run(ctx, elaborateTool, args...)
	if err != nil {
		return StageResult{Stage: StageElaborate}, err
	}

	return s.finish(StageElaborate, res, toolSucceeded(res)), nil
}

// Simulate runs the elaborated snapshot with the given test selected.
// Unlike compile and elaborate, a nonzero exit still counts as success when
// the clean-stop marker is present.
func (s *Stages) Simulate(ctx context.Context, testName string) (StageResult, error) {
	s.out.StageStart(StageSimulate, testName)

	args := []string{
		s.sim.Snapshot,
		"-tclbatch", s.sim.TclBatch,
		"--testplusarg", "TEST=" + testName,
	}

	res, err := s.inv.Run(ctx, simulateTool, args...)
	if err != nil {
		return StageResult{Stage: StageSimulate}, err
	}

	ok := !res.TimedOut && (res.ExitCode == 0 || strings.Contains(res.Combined(), simCompletedMarker))
	return s.finish(StageSimulate, res, ok), nil
}

// finish converts an invocation result into a StageResult and logs it.
func (s *Stages) finish(stage string, res Result, ok bool) StageResult {
	sr := StageResult{
		Stage:    stage,
		OK:       ok,
		ExitCode: res.ExitCode,
		TimedOut: res.TimedOut,
		Output:   res.Combined(),
	}
	if ok {
		s.out.StageSuccess(stage)
	} else {
		s.out.StageFailed(stage, sr.FailDetail())
	}
	return sr
}

// toolSucceeded applies the shared success criterion: exit code 0 and no
// case-insensitive "ERROR:" token anywhere in the combined output.
func toolSucceeded(res Result) bool {
	return !res.TimedOut && res.ExitCode == 0 && !containsErrorToken(res.Combined())
}

func containsErrorToken(s string) bool {
	return strings.Contains(strings.ToLower(s), "error:")
}
