// Package config provides configuration loading and validation for simflow.yaml.
package config

// Config represents the complete simflow.yaml configuration.
type Config struct {
	Project    ProjectConfig     `yaml:"project"`
	Toolchain  *ToolchainConfig  `yaml:"toolchain,omitempty"`
	Sources    SourcesConfig     `yaml:"sources"`
	Simulation *SimulationConfig `yaml:"simulation,omitempty"`
	Tests      map[string]string `yaml:"tests"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// ToolchainConfig configures how the simulation toolchain is located and invoked.
type ToolchainConfig struct {
	// EnvVar is the environment variable consulted for the toolchain bin directory.
	EnvVar string `yaml:"env_var,omitempty"`
	// SearchPaths are well-known install directories, checked in order.
	SearchPaths []string `yaml:"search_paths,omitempty"`
	// ProbeExecutable is the executable looked up on PATH as a last resort.
	ProbeExecutable string `yaml:"probe_executable,omitempty"`
	// TimeoutSeconds bounds every toolchain invocation.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// SourcesConfig describes the source layout in compilation order.
type SourcesConfig struct {
	// Packages are type/package definition files, compiled first.
	Packages []string `yaml:"packages,omitempty"`
	// Design lists the design-under-test files and their candidate directories.
	Design DesignConfig `yaml:"design,omitempty"`
	// Verification are bus functional models, scoreboards and other infrastructure.
	Verification []string `yaml:"verification,omitempty"`
	// TestGlobs are glob patterns matching test-case files.
	TestGlobs []string `yaml:"test_globs,omitempty"`
	// Top is the top-level testbench harness, compiled last.
	Top string `yaml:"top,omitempty"`
}

// DesignConfig lists logical design files resolved against candidate directories.
type DesignConfig struct {
	Files []string `yaml:"files,omitempty"`
	// CandidateDirs are checked in order for each logical file; first match wins.
	CandidateDirs []string `yaml:"candidate_dirs,omitempty"`
}

// SimulationConfig configures elaboration and simulation.
type SimulationConfig struct {
	TopModule string `yaml:"top_module,omitempty"`
	Snapshot  string `yaml:"snapshot,omitempty"`
	TclBatch  string `yaml:"tcl_batch,omitempty"`
	// ResultsFile is the sidecar file optionally written by the testbench.
	ResultsFile string `yaml:"results_file,omitempty"`
	WorkDir     string `yaml:"work_dir,omitempty"`
}
