package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"squish/internal/deps"
	"squish/internal/hwaccel"
	"squish/internal/logging"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and encoder support",
		Long: `Check that ffmpeg and ffprobe are installed and report which
hardware encoders are usable on this machine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			statuses := deps.CheckBinaries(deps.Required(cfg.FFmpegBinary(), cfg.FFprobeBinary()))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				detail := status.Command
				if !status.Available {
					detail = status.Detail
				}
				state := colorize(out, text.FgGreen, "ok")
				if !status.Available {
					state = colorize(out, text.FgRed, "missing")
				}
				rows = append(rows, []string{status.Name, state, detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft}))

			missing := deps.MissingRequired(statuses)
			if len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
			}

			if version, err := deps.FFmpegVersion(cmd.Context(), cfg.FFmpegBinary()); err == nil {
				fmt.Fprintf(out, "%s\n", version)
			}

			fmt.Fprintf(out, "Hardware encoder candidates: %s\n", strings.Join(hwaccel.Candidates(), ", "))
			detector := hwaccel.NewDetector(
				cfg.FFmpegBinary(),
				time.Duration(cfg.FFmpeg.HardwareProbes)*time.Second,
				logging.NewNop(),
			)
			encoder, err := detector.Detect(cmd.Context())
			switch {
			case err == nil:
				fmt.Fprintf(out, "Hardware encoding: available (%s)\n", encoder)
			case errors.Is(err, hwaccel.ErrNoEncoder):
				fmt.Fprintf(out, "Hardware encoding: unavailable, falling back to %s\n", hwaccel.CPUEncoder)
			default:
				fmt.Fprintf(out, "Hardware encoding: detection failed: %v\n", err)
			}
			return nil
		},
	}
}
