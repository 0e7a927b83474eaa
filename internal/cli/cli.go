// Package cli provides command-line interface functionality for simflow.
package cli

import (
	"fmt"
	"strings"

	"github.com/hdlforge/simflow/internal/errors"
	"github.com/hdlforge/simflow/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// wantsHelp returns true if args contain -h or --help before any -- separator.
// Arguments after -- are passed through, so help flags there are ignored.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		fmt.Printf("simflow %s\n", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	// Re-extract command after flag parsing
	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(cmdArgs, opts)
	case "list":
		return cmdList(cmdArgs, opts)
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'simflow --help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Config    string // explicit config file path, bypasses root discovery
	Toolchain string // explicit toolchain bin directory
	Report    string // report output path
	Quiet     bool
	NoColor   bool
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Pass-through arguments after -- must be preserved verbatim
// - Custom error messages with usage hints are needed
// - Flag package doesn't support these use cases cleanly
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--config" || arg == "-c":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.Config = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.Config = strings.TrimPrefix(arg, "--config=")
			i++
		case arg == "--toolchain":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--toolchain requires a value")
			}
			opts.Toolchain = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--toolchain="):
			opts.Toolchain = strings.TrimPrefix(arg, "--toolchain=")
			i++
		case arg == "--report" || arg == "-r":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--report requires a value")
			}
			opts.Report = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--report="):
			opts.Report = strings.TrimPrefix(arg, "--report=")
			i++
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--":
			// Everything after -- is passed through
			remaining = append(remaining, args[i+1:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	// Apply presentation settings to the shared output writer so all
	// commands behave consistently.
	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}

	return opts, remaining, nil
}
