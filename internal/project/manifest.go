// Package project loads the hwopt.toml manifest that configures a
// project's default pass pipeline.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name looked up by FindManifest.
const ManifestName = "hwopt.toml"

var (
	// ErrManifestNotFound indicates no hwopt.toml exists in the directory
	// or any of its parents.
	ErrManifestNotFound = errors.New("hwopt.toml not found")
	// ErrPipelineEmpty indicates a [pipeline] section without passes.
	ErrPipelineEmpty = errors.New("[pipeline].passes is empty")
)

// Manifest is the parsed hwopt.toml.
type Manifest struct {
	Package  PackageSection  `toml:"package"`
	Pipeline PipelineSection `toml:"pipeline"`

	// Dir is the directory the manifest was loaded from.
	Dir string `toml:"-"`
}

// PackageSection names the project.
type PackageSection struct {
	Name string `toml:"name"`
}

// PipelineSection configures the default pass pipeline.
type PipelineSection struct {
	Passes []string `toml:"passes"`
}

// Load parses a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("pipeline") && len(m.Pipeline.Passes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrPipelineEmpty)
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// FindManifest walks from dir upward to the filesystem root looking for
// hwopt.toml and loads the first one found.
func FindManifest(dir string) (*Manifest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, fmt.Errorf("%w (searched from %s)", ErrManifestNotFound, dir)
		}
		abs = parent
	}
}

// DefaultPipeline returns the manifest's pipeline, or the given fallback
// when the manifest has none.
func (m *Manifest) DefaultPipeline(fallback []string) []string {
	if m == nil || len(m.Pipeline.Passes) == 0 {
		return fallback
	}
	return m.Pipeline.Passes
}
