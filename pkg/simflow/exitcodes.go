// Package simflow provides public constants and utilities for external tools
// integrating with simflow.
package simflow

// Exit codes returned by the simflow CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully and all
	// requested tests passed.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (a stage failed, a test failed, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config, validation failure, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (toolchain not found, tool not invocable, etc.).
	ExitEnvError = 3
)
