// Package toolchain locates the simulation toolchain and runs its subcommands.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hdlforge/simflow/internal/config"
	simflowerrors "github.com/hdlforge/simflow/internal/errors"
)

// Locate resolves the toolchain's bin directory. Search order, first match
// wins: the explicit argument, the configured environment variable, the
// configured well-known install directories, and finally a PATH lookup of the
// probe executable. Deterministic, no retries.
func Locate(explicit string, cfg *config.ToolchainConfig) (string, error) {
	if explicit != "" && dirExists(explicit) {
		return explicit, nil
	}

	if env := os.Getenv(cfg.EnvVar); env != "" && dirExists(env) {
		return env, nil
	}

	for _, path := range cfg.SearchPaths {
		if dirExists(path) {
			return path, nil
		}
	}

	if probe, err := exec.LookPath(cfg.ProbeExecutable); err == nil {
		return filepath.Dir(probe), nil
	}

	return "", simflowerrors.Environmentf(
		"toolchain not found: set %s, pass --toolchain, or add %s to PATH",
		cfg.EnvVar, cfg.ProbeExecutable)
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
