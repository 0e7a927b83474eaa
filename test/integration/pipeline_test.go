//go:build !windows

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hdlforge/simflow/internal/output"
	"github.com/hdlforge/simflow/internal/project"
	"github.com/hdlforge/simflow/internal/report"
	"github.com/hdlforge/simflow/internal/runner"
	"github.com/hdlforge/simflow/internal/simparser"
	"github.com/hdlforge/simflow/internal/sources"
	"github.com/hdlforge/simflow/internal/toolchain"
)

// copyFixture clones a fixture project into a temp dir so the pipeline can
// write its work directory and report without touching the checked-in tree.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	src := filepath.Join(fixturesDir(), name)
	dst := t.TempDir()

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	if err != nil {
		t.Fatalf("failed to copy fixture %s: %v", name, err)
	}
	return dst
}

// fakeToolchainDir builds a bin directory of stub tools that mimic a healthy
// simulator installation.
func fakeToolchainDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	tools := map[string]string{
		"xvlog": `echo "INFO: compiled $# arguments"`,
		"xelab": `echo "INFO: elaboration done"`,
		"xsim": `echo "running $@"
echo "4 passed, 0 failed"
echo "ALL TESTS PASSED"
echo "Simulation completed at 2500 ns"`,
	}
	for name, body := range tools {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestFullPipeline(t *testing.T) {
	t.Parallel()

	root := copyFixture(t, "alu-project")
	binDir := fakeToolchainDir(t)

	proj, err := project.LoadProjectFrom(root)
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	buf := &bytes.Buffer{}
	out := output.NewWithWriters(buf, buf, false)

	timeout := time.Duration(proj.Config.Toolchain.TimeoutSeconds) * time.Second
	inv := toolchain.NewInvoker(binDir, proj.Root, timeout, out)
	stages := toolchain.NewStages(inv, proj.Root, proj.Config.Simulation, out)
	resolver := sources.NewResolver(proj.Root, &proj.Config.Sources, out)
	parser := simparser.NewRegistry().Default()

	r := runner.New(proj.Config.Tests, stages, resolver, parser, "", out)

	if !r.RunAll(context.Background(), nil) {
		t.Fatalf("pipeline failed, console output:\n%s", buf.String())
	}

	results := r.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(results))
	}
	for _, res := range results {
		if !res.Passed || res.PassCount != 4 {
			t.Errorf("test %q = %+v, want passed with 4 checks", res.Test, res)
		}
		if res.DurationNs != 2500 {
			t.Errorf("test %q duration = %d, want 2500", res.Test, res.DurationNs)
		}
	}

	// The work directory is created under the project root.
	if fi, statErr := os.Stat(filepath.Join(root, "work")); statErr != nil || !fi.IsDir() {
		t.Error("work directory was not created under the project root")
	}

	// The report round-trips through JSON with an all-passed summary.
	reportPath := filepath.Join(root, "verification_report.json")
	if err := r.Report().WriteJSON(reportPath); err != nil {
		t.Fatalf("failed to write report: %v", err)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	var rep report.RunReport
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if !rep.Summary.AllPassed || rep.Summary.TotalTests != 2 {
		t.Errorf("report summary = %+v, want 2 tests all passed", rep.Summary)
	}
	if rep.Summary.TotalPassCount != 8 {
		t.Errorf("total pass count = %d, want 8", rep.Summary.TotalPassCount)
	}
}

func TestFullPipelineCompileFailure(t *testing.T) {
	t.Parallel()

	root := copyFixture(t, "alu-project")
	binDir := t.TempDir()
	script := "#!/bin/sh\necho \"ERROR: [VRFC 10-2989] syntax error near 'endmodule'\"\nexit 1\n"
	if err := os.WriteFile(filepath.Join(binDir, "xvlog"), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write xvlog stub: %v", err)
	}

	proj, err := project.LoadProjectFrom(root)
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	buf := &bytes.Buffer{}
	out := output.NewWithWriters(buf, buf, false)
	inv := toolchain.NewInvoker(binDir, proj.Root, 10*time.Second, out)
	stages := toolchain.NewStages(inv, proj.Root, proj.Config.Simulation, out)
	resolver := sources.NewResolver(proj.Root, &proj.Config.Sources, out)

	r := runner.New(proj.Config.Tests, stages, resolver, simparser.NewRegistry().Default(), "", out)

	if r.RunAll(context.Background(), nil) {
		t.Fatal("pipeline succeeded despite compile failure")
	}
	if len(r.Results()) != 0 {
		t.Errorf("expected no outcomes after compile failure, got %v", r.Results())
	}
	if !strings.Contains(buf.String(), "syntax error") {
		t.Errorf("compiler output not surfaced on console:\n%s", buf.String())
	}
	if rep := r.Report(); rep.Summary.TotalTests != 0 {
		t.Errorf("report recorded %d tests after aborted run", rep.Summary.TotalTests)
	}
}

func TestFullPipelineSidecar(t *testing.T) {
	t.Parallel()

	root := copyFixture(t, "alu-project")
	binDir := fakeToolchainDir(t)

	// The xsim stub drops the sidecar results file into the project root,
	// like a testbench writing next to where the simulator runs.
	script := "#!/bin/sh\necho \"1 passed, 0 failed\"\nprintf 'add_basic=PASS\\nsub_basic=PASS\\n' > test_results.txt\n"
	if err := os.WriteFile(filepath.Join(binDir, "xsim"), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write xsim stub: %v", err)
	}

	proj, err := project.LoadProjectFrom(root)
	if err != nil {
		t.Fatalf("failed to load project: %v", err)
	}

	buf := &bytes.Buffer{}
	out := output.NewWithWriters(buf, buf, false)
	inv := toolchain.NewInvoker(binDir, proj.Root, 10*time.Second, out)
	stages := toolchain.NewStages(inv, proj.Root, proj.Config.Simulation, out)
	resolver := sources.NewResolver(proj.Root, &proj.Config.Sources, out)
	sidecar := filepath.Join(proj.Root, proj.Config.Simulation.ResultsFile)

	r := runner.New(proj.Config.Tests, stages, resolver, simparser.NewRegistry().Default(), sidecar, out)

	if !r.RunAll(context.Background(), []string{"smoke"}) {
		t.Fatalf("pipeline failed, console output:\n%s", buf.String())
	}

	results := r.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(results))
	}
	if results[0].Results["add_basic"] != "PASS" {
		t.Errorf("sidecar data missing from outcome: %+v", results[0].Results)
	}
}
