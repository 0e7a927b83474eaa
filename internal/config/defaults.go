package config

// Default configuration values.
const (
	DefaultEnvVar          = "VIVADO_PATH"
	DefaultProbeExecutable = "xvlog"
	DefaultTimeoutSeconds  = 300
	DefaultTopModule       = "tb_top"
	DefaultSnapshot        = "sim_snapshot"
	DefaultTclBatch        = "xsim_cfg.tcl"
	DefaultResultsFile     = "test_results.txt"
	DefaultWorkDir         = "work"
)

// defaultSearchPaths are well-known toolchain install directories, checked in order.
var defaultSearchPaths = []string{
	"/tools/Xilinx/Vivado/2025.2/bin",
	"/opt/Xilinx/Vivado/2025.2/bin",
	"C:/Xilinx/Vivado/2025.2/bin",
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyToolchainDefaults(cfg)
	applySimulationDefaults(cfg)
}

func applyToolchainDefaults(cfg *Config) {
	if cfg.Toolchain == nil {
		cfg.Toolchain = &ToolchainConfig{}
	}
	if cfg.Toolchain.EnvVar == "" {
		cfg.Toolchain.EnvVar = DefaultEnvVar
	}
	if len(cfg.Toolchain.SearchPaths) == 0 {
		cfg.Toolchain.SearchPaths = append([]string(nil), defaultSearchPaths...)
	}
	if cfg.Toolchain.ProbeExecutable == "" {
		cfg.Toolchain.ProbeExecutable = DefaultProbeExecutable
	}
	if cfg.Toolchain.TimeoutSeconds == 0 {
		cfg.Toolchain.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

func applySimulationDefaults(cfg *Config) {
	if cfg.Simulation == nil {
		cfg.Simulation = &SimulationConfig{}
	}
	if cfg.Simulation.TopModule == "" {
		cfg.Simulation.TopModule = DefaultTopModule
	}
	if cfg.Simulation.Snapshot == "" {
		cfg.Simulation.Snapshot = DefaultSnapshot
	}
	if cfg.Simulation.TclBatch == "" {
		cfg.Simulation.TclBatch = DefaultTclBatch
	}
	if cfg.Simulation.ResultsFile == "" {
		cfg.Simulation.ResultsFile = DefaultResultsFile
	}
	if cfg.Simulation.WorkDir == "" {
		cfg.Simulation.WorkDir = DefaultWorkDir
	}
}
