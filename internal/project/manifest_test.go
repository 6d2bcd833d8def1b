package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hwopt/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "counter"

[pipeline]
passes = ["verify", "rename-wires"]
`)
	m, err := project.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "counter" {
		t.Errorf("name = %q", m.Package.Name)
	}
	if !reflect.DeepEqual(m.Pipeline.Passes, []string{"verify", "rename-wires"}) {
		t.Errorf("passes = %v", m.Pipeline.Passes)
	}
}

func TestLoadEmptyPipelineSection(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[pipeline]\npasses = []\n")
	_, err := project.Load(path)
	if !errors.Is(err, project.ErrPipelineEmpty) {
		t.Errorf("err = %v, want ErrPipelineEmpty", err)
	}
}

func TestFindManifestInParent(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"p\"\n")
	nested := filepath.Join(root, "rtl", "core")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, err := project.FindManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "p" {
		t.Errorf("name = %q", m.Package.Name)
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, err := project.FindManifest(t.TempDir())
	if !errors.Is(err, project.ErrManifestNotFound) {
		t.Errorf("err = %v, want ErrManifestNotFound", err)
	}
}

func TestDefaultPipeline(t *testing.T) {
	fallback := []string{"verify"}
	var nilManifest *project.Manifest
	if got := nilManifest.DefaultPipeline(fallback); !reflect.DeepEqual(got, fallback) {
		t.Errorf("nil manifest pipeline = %v", got)
	}

	m := &project.Manifest{}
	m.Pipeline.Passes = []string{"rename-wires"}
	if got := m.DefaultPipeline(fallback); !reflect.DeepEqual(got, []string{"rename-wires"}) {
		t.Errorf("pipeline = %v", got)
	}
}
