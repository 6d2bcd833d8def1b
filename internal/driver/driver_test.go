package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hwopt/internal/driver"
	"hwopt/internal/ir"
)

const sample = `circuit Top {
  module Top {
    input en: uint<1>
    wire a: uint<8>
    when en {
      wire b: uint<1>
    }
    wire c: uint<8>
  }
}
`

func TestParseBytes(t *testing.T) {
	res := driver.ParseBytes("sample.hw", []byte(sample), 100)
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %+v", res.Bag.Items())
	}
	if res.Circuit.Ident != "Top" {
		t.Errorf("circuit = %q", res.Circuit.Ident)
	}
}

func TestRunPipelineRenamesWires(t *testing.T) {
	res := driver.ParseBytes("sample.hw", []byte(sample), 100)
	ran := driver.RunPipeline(res.Circuit, "verify,rename-wires", res.Bag, nil)
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %+v", res.Bag.Items())
	}
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}

	var names []string
	ir.WalkType(res.Circuit, func(w *ir.Wire) { names = append(names, w.Ident) })
	want := []string{"foo_0", "foo_1", "foo_2"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRunPipelineUnknownPass(t *testing.T) {
	res := driver.ParseBytes("sample.hw", []byte(sample), 100)
	ran := driver.RunPipeline(res.Circuit, "bogus", res.Bag, nil)
	if ran != 0 || !res.Bag.HasErrors() {
		t.Errorf("ran = %d, errors = %v", ran, res.Bag.HasErrors())
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hw", "a.hw"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sample), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Non-input files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := driver.ParseDir(context.Background(), dir, 2, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Deterministic path order.
	if filepath.Base(results[0].Path) != "a.hw" || filepath.Base(results[1].Path) != "b.hw" {
		t.Errorf("order: %s, %s", results[0].Path, results[1].Path)
	}
}

func TestParseDirEmpty(t *testing.T) {
	results, err := driver.ParseDir(context.Background(), t.TempDir(), 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := driver.OutputKey([]byte(sample), "verify,rename-wires")
	in := &driver.DiskPayload{
		Pipeline: "verify,rename-wires",
		Output:   "circuit Top {\n}\n",
		Wires:    3,
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out driver.DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if out.Output != in.Output || out.Wires != 3 {
		t.Errorf("payload = %+v", out)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out driver.DiskPayload
	ok, err := cache.Get(driver.OutputKey([]byte("other"), "verify"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("unexpected cache hit")
	}
}

func TestOutputKeyDependsOnPipeline(t *testing.T) {
	a := driver.OutputKey([]byte(sample), "verify")
	b := driver.OutputKey([]byte(sample), "verify,rename-wires")
	if a == b {
		t.Error("same key for different pipelines")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := driver.OutputKey([]byte(sample), "verify")
	if err := cache.Put(key, &driver.DiskPayload{Output: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out driver.DiskPayload
	if ok, _ := cache.Get(key, &out); ok {
		t.Error("entry survived DropAll")
	}
}
