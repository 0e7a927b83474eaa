package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	simflowerrors "github.com/hdlforge/simflow/internal/errors"
	"github.com/hdlforge/simflow/internal/output"
)

// TimeoutExitCode is the sentinel exit code reported when an invocation is
// killed by the wall-clock timeout.
const TimeoutExitCode = -1

// waitDelay bounds how long Wait blocks on output pipes after the process
// tree has been killed.
const waitDelay = 5 * time.Second

// Result holds the captured output of one toolchain invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Combined returns stdout and stderr joined, for marker scanning.
func (r Result) Combined() string {
	return r.Stdout + "\n" + r.Stderr
}

// Invoker runs toolchain subcommands with a bounded timeout, capturing exit
// code, stdout and stderr. Tool-level failures (nonzero exit) are returned in
// the Result; only invocation-level failures (spawn errors) fail the call.
type Invoker struct {
	binDir  string
	workDir string
	timeout time.Duration
	out     *output.Writer
}

// NewInvoker creates an Invoker that runs commands from binDir with workDir
// as the working directory.
func NewInvoker(binDir, workDir string, timeout time.Duration, out *output.Writer) *Invoker {
	return &Invoker{
		binDir:  binDir,
		workDir: workDir,
		timeout: timeout,
		out:     out,
	}
}

// Run executes one toolchain subcommand. The timeout is enforced by killing
// the whole process tree, not by cooperative cancellation; a timed-out
// invocation returns a sentinel Result rather than an error. The child is
// fully reaped before Run returns.
func (inv *Invoker) Run(ctx context.Context, name string, args ...string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	inv.out.Command(name, args)

	cmd := exec.CommandContext(ctx, inv.resolveTool(name), args...)
	cmd.Dir = inv.workDir
	cmd.Env = augmentedEnv(inv.binDir)
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return killProcessTree(cmd)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.ExitCode = TimeoutExitCode
		res.TimedOut = true
		return res, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, simflowerrors.Environmentf("failed to invoke %s: %v", name, err)
	}

	return res, nil
}

// resolveTool prefers the located bin directory over a plain PATH lookup so
// the invoked tools match the located installation.
func (inv *Invoker) resolveTool(name string) string {
	if inv.binDir == "" {
		return name
	}
	candidate := filepath.Join(inv.binDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	if _, err := os.Stat(candidate + ".exe"); err == nil {
		return candidate + ".exe"
	}
	return name
}

// augmentedEnv returns the process environment with the toolchain bin
// directory prepended to PATH, so tools that re-invoke siblings find them.
func augmentedEnv(binDir string) []string {
	env := os.Environ()
	if binDir == "" {
		return env
	}
	for i, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			env[i] = "PATH=" + binDir + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
			return env
		}
	}
	return append(env, "PATH="+binDir)
}
