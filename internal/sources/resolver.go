// Package sources computes the ordered, deduplicated source set for compilation.
package sources

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/hdlforge/simflow/internal/config"
	"github.com/hdlforge/simflow/internal/output"
)

// Resolver computes the compilation source set from the configured layout.
type Resolver struct {
	root string
	cfg  *config.SourcesConfig
	out  *output.Writer
}

// NewResolver creates a Resolver rooted at the project directory.
func NewResolver(root string, cfg *config.SourcesConfig, out *output.Writer) *Resolver {
	return &Resolver{
		root: root,
		cfg:  cfg,
		out:  out,
	}
}

// Resolve returns the ordered, deduplicated set of existing source files:
// package definitions first, then design files (each resolved against the
// candidate directories, first match wins), then verification infrastructure,
// then test-case files, then the top-level harness last. Missing files are
// logged as warnings and skipped; a run may intentionally target a partial
// source subset.
func (r *Resolver) Resolve() []string {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	// Packages define types used by everything else, so they come first.
	for _, f := range r.cfg.Packages {
		r.addIfExists(add, filepath.Join(r.root, f))
	}

	r.resolveDesignFiles(add)

	for _, f := range r.cfg.Verification {
		r.addIfExists(add, filepath.Join(r.root, f))
	}

	// Test-case files; order within a glob group is insignificant, but a
	// sorted listing keeps the command line deterministic.
	for _, pattern := range r.cfg.TestGlobs {
		matches, err := filepath.Glob(filepath.Join(r.root, pattern))
		if err != nil {
			r.out.Warning("invalid source glob %q: %v", pattern, err)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	// The harness instantiates everything above, so it is compiled last.
	if r.cfg.Top != "" {
		r.addIfExists(add, filepath.Join(r.root, r.cfg.Top))
	}

	return files
}

// resolveDesignFiles resolves each logical design file against the candidate
// directories in order. The first existing match wins; duplicates in
// lower-precedence directories are silently ignored.
func (r *Resolver) resolveDesignFiles(add func(string)) {
	dirs := r.cfg.Design.CandidateDirs
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	for _, f := range r.cfg.Design.Files {
		found := false
		for _, dir := range dirs {
			candidate := filepath.Join(r.root, dir, f)
			if fileExists(candidate) {
				add(candidate)
				found = true
				break
			}
		}
		if !found {
			r.out.Warning("missing design file: %s (checked %d candidate directories)", f, len(dirs))
		}
	}
}

func (r *Resolver) addIfExists(add func(string), path string) {
	if fileExists(path) {
		add(path)
		return
	}
	r.out.Warning("missing source file: %s", path)
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
