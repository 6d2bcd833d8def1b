package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// InputExt is the file extension of textual IR inputs.
const InputExt = ".hw"

// ListInputs returns all .hw files under dir, sorted for deterministic
// processing order.
func ListInputs(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, InputExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every .hw file under dir in parallel. jobs <= 0 means
// one worker per CPU. Results are ordered by path regardless of which
// worker finished first; per-file failures are diagnostics or I/O errors
// inside the result, not a group failure.
func ParseDir(ctx context.Context, dir string, jobs, maxDiagnostics int) ([]*ParseResult, error) {
	files, err := ListInputs(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-goroutine unique, no mutex needed.
	results := make([]*ParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Parse(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
