package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// videoExtensions are the container types picked up when expanding a
// directory argument.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".flv":  true,
	".wmv":  true,
	".m4v":  true,
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var presetFlag string
	var outputDirFlag string
	var gpuFlag bool
	var noProgressFlag bool

	cmd := &cobra.Command{
		Use:   "batch INPUT...",
		Short: "Compress multiple videos into an output directory",
		Long: `Compress multiple videos into an output directory.

Arguments may be files or directories; directories contribute every
video file they directly contain. Individual failures are reported in
the final summary without stopping the rest of the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			presets, err := parsePresetFlag(cfg, presetFlag)
			if err != nil {
				return err
			}

			inputs, err := expandInputs(args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no video files found in %s", strings.Join(args, ", "))
			}

			outputDir := outputDirFlag
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}

			compressor, cleanup, err := ctx.newCompressor(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			printBanner(ctx, out)
			fmt.Fprintf(out, "Compressing %d file(s) into %s\n", len(inputs), outputDir)

			showProgress := !noProgressFlag && stderrIsTerminal()
			summary, err := compressor.Batch(cmd.Context(), inputs, outputDir, presets, gpuFlag, showProgress)
			if err != nil {
				return err
			}
			printSummary(out, cfg, summary)
			if len(summary.Failures) > 0 {
				return fmt.Errorf("%d of %d file(s) failed", len(summary.Failures), summary.Attempted())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Quality preset, a comma-separated list, or \"all\"")
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Destination directory (default from config)")
	cmd.Flags().BoolVar(&gpuFlag, "gpu", false, "Prefer a hardware encoder when one is available")
	cmd.Flags().BoolVar(&noProgressFlag, "no-progress", false, "Disable the progress bar")
	return cmd
}

// expandInputs flattens file and directory arguments into a sorted,
// deduplicated list of video files. Explicit file arguments are kept
// even with unrecognized extensions; directory scans filter by
// extension.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var inputs []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			inputs = append(inputs, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Let the batch report it as a per-file failure.
			add(arg)
			continue
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read directory %q: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if videoExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				add(filepath.Join(arg, entry.Name()))
			}
		}
	}

	sort.Strings(inputs)
	return inputs, nil
}
