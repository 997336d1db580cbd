package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"squish/internal/compress"
	"squish/internal/config"
	"squish/internal/preset"
)

func newInteractiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run squish as an interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file, ok := cmd.InOrStdin().(*os.File); ok {
				if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
					return fmt.Errorf("interactive mode requires a terminal")
				}
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			compressor, cleanup, err := ctx.newCompressor(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			printBanner(ctx, out)

			session := &interactiveSession{
				cfg:        cfg,
				compressor: compressor,
				in:         bufio.NewScanner(cmd.InOrStdin()),
				out:        out,
			}
			return session.run(cmd)
		},
	}
}

type interactiveSession struct {
	cfg        *config.Config
	compressor *compress.Compressor
	in         *bufio.Scanner
	out        io.Writer
}

func (s *interactiveSession) run(cmd *cobra.Command) error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1) Compress a video")
		fmt.Fprintln(s.out, "2) Batch compress files or a directory")
		fmt.Fprintln(s.out, "3) Quality preset guide")
		fmt.Fprintln(s.out, "4) Size calculator")
		fmt.Fprintln(s.out, "q) Quit")

		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return nil
		}
		switch strings.ToLower(choice) {
		case "1":
			s.compressOne(cmd)
		case "2":
			s.batch(cmd)
		case "3":
			s.showPresets()
		case "4":
			s.sizeCalculator()
		case "q", "quit", "exit":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(s.out, "Unknown option %q\n", choice)
		}
		if err := cmd.Context().Err(); err != nil {
			return err
		}
	}
}

func (s *interactiveSession) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptPresets reads a preset selection. Unlike the CLI flag, unknown
// names inside a list are skipped with a warning instead of aborting the
// whole action.
func (s *interactiveSession) promptPresets() ([]preset.Preset, bool) {
	value, ok := s.prompt(fmt.Sprintf("Preset [%s]: ", s.cfg.Compression.DefaultPreset))
	if !ok {
		return nil, false
	}
	if value == "" {
		value = s.cfg.Compression.DefaultPreset
	}
	if strings.EqualFold(value, "all") {
		return preset.All(), true
	}

	seen := make(map[string]bool)
	var presets []preset.Preset
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		p, ok := preset.Lookup(name)
		if !ok {
			fmt.Fprintf(s.out, "Skipping unknown preset %q (valid: %s)\n", name, strings.Join(preset.Names(), ", "))
			continue
		}
		if !seen[p.Name] {
			seen[p.Name] = true
			presets = append(presets, p)
		}
	}
	if len(presets) == 0 {
		fmt.Fprintln(s.out, "No valid presets selected.")
		return nil, true
	}
	return presets, true
}

func (s *interactiveSession) promptGPU() (bool, bool) {
	value, ok := s.prompt("Use hardware encoder if available? [y/N]: ")
	if !ok {
		return false, false
	}
	value = strings.ToLower(value)
	return value == "y" || value == "yes", true
}

func (s *interactiveSession) compressOne(cmd *cobra.Command) {
	input, ok := s.prompt("Video file: ")
	if !ok || input == "" {
		return
	}
	presets, ok := s.promptPresets()
	if !ok || presets == nil {
		return
	}
	useGPU, ok := s.promptGPU()
	if !ok {
		return
	}

	if len(presets) > 1 {
		summary := s.compressor.MultiPreset(cmd.Context(), input, presets, useGPU, stderrIsTerminal())
		printSummary(s.out, s.cfg, summary)
		return
	}
	result, err := s.compressor.Compress(cmd.Context(), compress.Request{
		Input:        input,
		Preset:       presets[0],
		UseGPU:       useGPU,
		ShowProgress: stderrIsTerminal(),
	})
	if err != nil {
		fmt.Fprintf(s.out, "Compression failed: %v\n", err)
		return
	}
	printResult(s.out, s.cfg, result)
}

func (s *interactiveSession) batch(cmd *cobra.Command) {
	target, ok := s.prompt("File or directory to compress: ")
	if !ok || target == "" {
		return
	}
	inputs, err := expandInputs([]string{target})
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	if len(inputs) == 0 {
		fmt.Fprintf(s.out, "No video files found in %s\n", target)
		return
	}
	presets, ok := s.promptPresets()
	if !ok || presets == nil {
		return
	}
	useGPU, ok := s.promptGPU()
	if !ok {
		return
	}

	summary, err := s.compressor.Batch(cmd.Context(), inputs, s.cfg.Paths.OutputDir, presets, useGPU, stderrIsTerminal())
	if err != nil {
		fmt.Fprintf(s.out, "Batch failed: %v\n", err)
		return
	}
	printSummary(s.out, s.cfg, summary)
}

func (s *interactiveSession) sizeCalculator() {
	input, ok := s.prompt("Video file: ")
	if !ok || input == "" {
		return
	}
	if err := printEstimates(s.out, s.cfg, input); err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
	}
}

func (s *interactiveSession) showPresets() {
	rows := make([][]string, 0, len(preset.All()))
	for _, p := range preset.All() {
		rows = append(rows, []string{p.Name, p.Description, p.BestFor})
	}
	fmt.Fprintln(s.out, renderTable(
		[]string{"Preset", "Description", "Best for"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft}))
}
