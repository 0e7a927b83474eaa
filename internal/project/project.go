package project

import (
	"fmt"
	"path/filepath"

	"github.com/hdlforge/simflow/internal/config"
)

// Project represents a loaded simflow project.
type Project struct {
	Root     string
	Config   *config.Config
	Warnings []string
}

// LoadProject finds and loads a project from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, ConfigFileName)

	cfg, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// LoadProjectFromFile loads a project from an explicit config file path,
// bypassing root discovery. The project root is the file's directory.
func LoadProjectFromFile(path string) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cfg, warnings, err := config.LoadAndValidate(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &Project{
		Root:     filepath.Dir(abs),
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// TestNames returns the registered test names excluding the "all" sentinel,
// in sorted order for deterministic listings.
func (p *Project) TestNames() []string {
	return config.SortedTestNames(p.Config.Tests)
}
