package config

import (
	"fmt"
	"regexp"
	"sort"
)

// Validation patterns.
var (
	// Project name: must start with lowercase letter, may contain lowercase, digits, hyphens.
	// Hyphens must not be consecutive or trailing.
	projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

	// Test name: lowercase letters, digits, and underscores.
	testNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// AllTestsName is the registry sentinel that expands to every registered test.
const AllTestsName = "all"

// SortedTestNames returns the registered test names excluding the "all"
// sentinel, in sorted order.
func SortedTestNames(tests map[string]string) []string {
	names := make([]string, 0, len(tests))
	for name := range tests {
		if name == AllTestsName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := ValidateProjectName(cfg.Project.Name); err != nil {
		return nil, err
	}

	if err := validateTests(cfg); err != nil {
		return nil, err
	}

	warnings = append(warnings, validateToolchain(cfg)...)
	warnings = append(warnings, validateSources(cfg)...)

	return warnings, nil
}

// ValidateProjectName checks that a project name is valid.
func ValidateProjectName(name string) error {
	if name == "" {
		return &ValidationError{
			Field:   "project.name",
			Message: "is required",
		}
	}
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "project.name",
			Message: fmt.Sprintf("%q must start with a lowercase letter and contain only lowercase letters, digits, and single hyphens", name),
		}
	}
	return nil
}

func validateTests(cfg *Config) error {
	registered := 0
	for name := range cfg.Tests {
		if name == AllTestsName {
			continue
		}
		if !testNamePattern.MatchString(name) {
			return &ValidationError{
				Field:   fmt.Sprintf("tests.%s", name),
				Message: "test names must start with a lowercase letter and contain only lowercase letters, digits, and underscores",
			}
		}
		registered++
	}
	if registered == 0 {
		return &ValidationError{
			Field:   "tests",
			Message: "at least one test must be registered",
		}
	}
	return nil
}

func validateToolchain(cfg *Config) []string {
	var warnings []string
	if cfg.Toolchain != nil && cfg.Toolchain.TimeoutSeconds < 0 {
		warnings = append(warnings, fmt.Sprintf("toolchain.timeout_seconds=%d is negative (default will be used)", cfg.Toolchain.TimeoutSeconds))
		cfg.Toolchain.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return warnings
}

func validateSources(cfg *Config) []string {
	var warnings []string
	if cfg.Sources.Top == "" {
		warnings = append(warnings, "sources.top is not set; no top-level harness will be compiled")
	}
	if len(cfg.Sources.Design.Files) > 0 && len(cfg.Sources.Design.CandidateDirs) == 0 {
		warnings = append(warnings, "sources.design.files is set but sources.design.candidate_dirs is empty; design files will be resolved against the project root only")
	}
	return warnings
}
