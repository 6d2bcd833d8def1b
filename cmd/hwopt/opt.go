package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hwopt/internal/driver"
	"hwopt/internal/ir"
	"hwopt/internal/observ"
	"hwopt/internal/project"
)

var optCmd = &cobra.Command{
	Use:   "opt [flags] <file.hw>",
	Short: "Run a pass pipeline over a circuit",
	Long: `Opt parses a .hw file, runs the configured pass pipeline and prints the
resulting IR. The pipeline comes from --passes, or else from the nearest
hwopt.toml manifest, or else defaults to "verify".`,
	Args: cobra.ExactArgs(1),
	RunE: runOpt,
}

func init() {
	optCmd.Flags().String("passes", "", "comma-separated pass pipeline (overrides hwopt.toml)")
	optCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	optCmd.Flags().Bool("no-cache", false, "bypass the disk cache")
}

func runOpt(cmd *cobra.Command, args []string) error {
	path := args[0]

	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	pipeline, err := resolvePipeline(cmd, path)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	timer := observ.NewTimer()

	// Cache lookup happens on raw bytes, before any parsing.
	var cache *driver.DiskCache
	var key driver.Digest
	if !noCache {
		content, readErr := os.ReadFile(path)
		if readErr == nil {
			key = driver.OutputKey(content, pipeline)
			if c, cacheErr := driver.OpenDiskCache("hwopt"); cacheErr == nil {
				cache = c
				var payload driver.DiskPayload
				if ok, _ := cache.Get(key, &payload); ok {
					if _, err := io.WriteString(out, payload.Output); err != nil {
						return err
					}
					if !quiet {
						fmt.Fprintf(os.Stderr, "cache hit (%d wires)\n", payload.Wires)
					}
					return nil
				}
			}
		}
	}

	phase := timer.Begin(observ.PhaseParse, filepath.Base(path))
	res, err := driver.Parse(path, maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	timer.End(phase, "")
	if res.Bag.HasErrors() {
		reportDiagnostics(cmd, res)
		return fmt.Errorf("%s: parse errors", path)
	}

	ran := driver.RunPipeline(res.Circuit, pipeline, res.Bag, timer)
	if reportDiagnostics(cmd, res) {
		return fmt.Errorf("%s: pipeline failed after %d passes", path, ran)
	}

	printed := ir.Sprint(res.Circuit)
	if _, err := io.WriteString(out, printed); err != nil {
		return err
	}

	if cache != nil {
		cphase := timer.Begin(observ.PhaseCache, "store")
		// Best effort; a cold cache next run is not an error.
		_ = cache.Put(key, &driver.DiskPayload{
			Pipeline: pipeline,
			Output:   printed,
			Wires:    ir.CountType[*ir.Wire](res.Circuit),
		})
		timer.End(cphase, "")
	}

	if showTimings && !quiet {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// resolvePipeline picks the pipeline from --passes, the nearest manifest,
// or the built-in default, in that order.
func resolvePipeline(cmd *cobra.Command, inputPath string) (string, error) {
	spec, err := cmd.Flags().GetString("passes")
	if err != nil {
		return "", fmt.Errorf("failed to get passes flag: %w", err)
	}
	if spec != "" {
		return spec, nil
	}

	manifest, err := project.FindManifest(filepath.Dir(inputPath))
	if err != nil {
		if errors.Is(err, project.ErrManifestNotFound) {
			return strings.Join(driver.DefaultPipeline, ","), nil
		}
		return "", err
	}
	return strings.Join(manifest.DefaultPipeline(driver.DefaultPipeline), ","), nil
}

func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get output flag: %w", err)
	}
	if outPath == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
