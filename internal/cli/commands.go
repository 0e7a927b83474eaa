package cli

import (
	"context"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hdlforge/simflow/internal/errors"
	"github.com/hdlforge/simflow/internal/project"
	"github.com/hdlforge/simflow/internal/runner"
	"github.com/hdlforge/simflow/internal/simparser"
	"github.com/hdlforge/simflow/internal/sources"
	"github.com/hdlforge/simflow/internal/toolchain"
)

const (
	helpCommandWidth = 12
	helpFlagWidth    = 22
	helpEnvWidth     = 14
)

// defaultReportName is the report file written next to the project config
// when --report is not given.
const defaultReportName = "verification_report.json"

// stageDescriptions maps pipeline stage names to their help descriptions.
var stageDescriptions = []struct {
	stage       string
	description string
}{
	{toolchain.StageCompile, "analyze all HDL sources into the work library"},
	{toolchain.StageElaborate, "link the design and build a simulation snapshot"},
	{toolchain.StageSimulate, "execute the snapshot once per requested test"},
}

// loadProject loads the project, printing errors and warnings. An explicit
// config path bypasses root discovery. Returns nil and an exit code on
// failure.
func loadProject(configPath string) (*project.Project, int) {
	var proj *project.Project
	var err error
	if configPath != "" {
		proj, err = project.LoadProjectFromFile(configPath)
	} else {
		proj, err = project.LoadProject()
	}
	if err != nil {
		out.ErrorPrefix("%v", err)
		if err == project.ErrNoProjectRoot {
			out.Hint("run simflow inside a project containing %s", project.ConfigFileName)
		}
		return nil, errors.GetExitCode(err)
	}
	for _, warning := range proj.Warnings {
		out.Warning("%s", warning)
	}
	return proj, 0
}

// cmdRun executes the verification pipeline for the requested tests.
func cmdRun(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printRunUsage()
		return 0
	}

	proj, code := loadProject(opts.Config)
	if proj == nil {
		return code
	}

	binDir, err := toolchain.Locate(opts.Toolchain, proj.Config.Toolchain)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	out.Info("using toolchain: %s", binDir)

	timeout := time.Duration(proj.Config.Toolchain.TimeoutSeconds) * time.Second
	inv := toolchain.NewInvoker(binDir, proj.Root, timeout, out)
	stages := toolchain.NewStages(inv, proj.Root, proj.Config.Simulation, out)
	resolver := sources.NewResolver(proj.Root, &proj.Config.Sources, out)
	parser := simparser.NewRegistry().Default()
	sidecar := filepath.Join(proj.Root, proj.Config.Simulation.ResultsFile)

	r := runner.New(proj.Config.Tests, stages, resolver, parser, sidecar, out)
	passed := r.RunAll(context.Background(), args)

	printRunSummary(r.Results())

	reportPath := opts.Report
	if reportPath == "" {
		reportPath = filepath.Join(proj.Root, defaultReportName)
	}
	if err := r.Report().WriteJSON(reportPath); err != nil {
		out.ErrorPrefix("failed to write report: %v", err)
		return errors.ExitRuntimeError
	}
	out.Info("report written to: %s", reportPath)

	if !passed {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// cmdList prints the tests defined in the project configuration.
func cmdList(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printListUsage()
		return 0
	}

	proj, code := loadProject(opts.Config)
	if proj == nil {
		return code
	}

	names := proj.TestNames()
	if len(names) == 0 {
		out.Println("no tests defined")
		return 0
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, proj.Config.Tests[name]})
	}
	out.Table([]string{"TEST", "DESCRIPTION"}, rows)
	return 0
}

// printUsage prints the top-level help.
func printUsage() {
	titleCase := cases.Title(language.English)

	out.HelpTitle("simflow - HDL verification pipeline")
	out.Println("")
	out.HelpUsage("simflow <command> [flags] [tests...]")

	out.HelpSection("Commands")
	out.HelpCommand("run", "run the verification pipeline", helpCommandWidth)
	out.HelpCommand("list", "list tests defined in the project", helpCommandWidth)
	out.HelpCommand("version", "print the simflow version", helpCommandWidth)
	out.HelpCommand("help", "print this help", helpCommandWidth)

	out.HelpSection("Pipeline")
	for _, s := range stageDescriptions {
		out.HelpCommand(titleCase.String(s.stage), s.description, helpCommandWidth)
	}

	out.HelpSection("Flags")
	out.HelpFlag("-c, --config <path>", "config file path (skips discovery)", helpFlagWidth)
	out.HelpFlag("--toolchain <dir>", "toolchain bin directory", helpFlagWidth)
	out.HelpFlag("-r, --report <path>", "write the JSON report to <path>", helpFlagWidth)
	out.HelpFlag("-q, --quiet", "suppress informational output", helpFlagWidth)
	out.HelpFlag("--no-color", "disable colored output", helpFlagWidth)

	out.HelpSection("Environment")
	out.HelpEnvVar("VIVADO_PATH", "toolchain installation directory", helpEnvWidth)
	out.HelpEnvVar("NO_COLOR", "disable colored output", helpEnvWidth)

	out.HelpSection("Examples")
	out.HelpExample("simflow run", "run every test in the project")
	out.HelpExample("simflow run smoke", "run a single test")
	out.HelpExample("simflow list", "show the configured tests")
}

// printRunUsage prints help for the run command.
func printRunUsage() {
	out.HelpTitle("simflow run - execute the verification pipeline")
	out.Println("")
	out.HelpUsage("simflow run [flags] [tests...]")
	out.Println("")
	out.Println("Runs compile and elaborate once, then simulates each requested")
	out.Println("test. With no test arguments every configured test is run.")

	out.HelpSection("Flags")
	out.HelpFlag("--toolchain <dir>", "toolchain bin directory", helpFlagWidth)
	out.HelpFlag("-r, --report <path>", "write the JSON report to <path>", helpFlagWidth)

	out.HelpSection("Examples")
	out.HelpExample("simflow run", "run every test")
	out.HelpExample("simflow run smoke stress", "run two tests in order")
	out.HelpExample("simflow run all", "run every test explicitly")
}

// printListUsage prints help for the list command.
func printListUsage() {
	out.HelpTitle("simflow list - show configured tests")
	out.Println("")
	out.HelpUsage("simflow list")
}
