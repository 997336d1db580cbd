package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"squish/internal/media/ffprobe"
	"squish/internal/textutil"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info INPUT",
		Short: "Show media details for a video file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input := args[0]
			if _, err := os.Stat(input); err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("input file not found: %s", input)
				}
				return err
			}

			probe, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), input)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"File", input},
				{"Container", probe.Format.FormatName},
				{"Duration", textutil.FormatElapsed(time.Duration(probe.DurationSeconds() * float64(time.Second)))},
				{"Size", formatBytes(probe.SizeBytes())},
			}
			if rate := probe.BitRate(); rate > 0 {
				rows = append(rows, []string{"Bitrate", fmt.Sprintf("%d kb/s", rate/1000)})
			}
			if video, ok := probe.FirstVideoStream(); ok {
				rows = append(rows,
					[]string{"Video codec", video.CodecName},
					[]string{"Resolution", fmt.Sprintf("%dx%d", video.Width, video.Height)},
				)
				if fps := video.FrameRate(); fps > 0 {
					rows = append(rows, []string{"Frame rate", fmt.Sprintf("%.2f fps", fps)})
				}
				needsScale := video.Width > cfg.Compression.MaxWidth || video.Height > cfg.Compression.MaxHeight
				rows = append(rows, []string{"Will downscale", yesNo(needsScale)})
			}
			rows = append(rows, []string{"Has audio", yesNo(probe.HasAudio())})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"}, rows,
				[]columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}
