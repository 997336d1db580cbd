package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"squish/internal/logging"
)

// stderrTailLimit bounds how much encoder stderr is retained for error reports.
const stderrTailLimit = 4 * 1024

// RunResult reports the outcome of a single ffmpeg invocation.
type RunResult struct {
	Elapsed    time.Duration
	StderrTail string
}

// RunOptions controls process execution.
type RunOptions struct {
	// Duration of the source, used to scale the progress bar. Zero disables
	// the bar (unknown probe data must not break the encode).
	Duration time.Duration
	// ShowProgress renders a terminal progress bar on stderr.
	ShowProgress bool
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Run executes ffmpeg for the plan, streaming -progress output into a
// progress bar when requested. The returned error wraps the tail of stderr
// so callers can surface the encoder's own diagnostics.
func Run(ctx context.Context, binary string, plan Plan, opts RunOptions) (RunResult, error) {
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "ffmpeg"))

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	plan.Progress = true
	args := BuildArgs(plan)
	logger.Debug("running ffmpeg", logging.String("args", strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, binary, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return RunResult{}, fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}
	var stderr tailBuffer
	cmd.Stderr = &stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return RunResult{}, fmt.Errorf("start ffmpeg: %w", err)
	}

	bar := newProgressBar(plan.Input, opts)
	ScanProgress(stdout, func(update ProgressUpdate) {
		if bar == nil {
			return
		}
		if update.Done {
			_ = bar.Finish()
			return
		}
		processed := update.Processed
		if opts.Duration > 0 && processed > opts.Duration {
			processed = opts.Duration
		}
		_ = bar.Set64(processed.Milliseconds())
	})

	err = cmd.Wait()
	elapsed := time.Since(started)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	result := RunResult{Elapsed: elapsed, StderrTail: stderr.String()}
	if err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
			return result, fmt.Errorf("ffmpeg timed out after %s", opts.Timeout)
		} else if ctxErr != nil {
			return result, ctxErr
		}
		if tail := result.StderrTail; tail != "" {
			return result, fmt.Errorf("ffmpeg: %w: %s", err, lastLines(tail, 5))
		}
		return result, fmt.Errorf("ffmpeg: %w", err)
	}
	return result, nil
}

func newProgressBar(input string, opts RunOptions) *progressbar.ProgressBar {
	if !opts.ShowProgress || opts.Duration <= 0 {
		return nil
	}
	return progressbar.NewOptions64(
		opts.Duration.Milliseconds(),
		progressbar.OptionSetDescription(fmt.Sprintf("Compressing %s", filepath.Base(input))),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(200*time.Millisecond),
	)
}

// tailBuffer keeps only the most recent writes, bounded by stderrTailLimit.
type tailBuffer struct {
	buf bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf.Write(p)
	if t.buf.Len() > stderrTailLimit {
		trimmed := t.buf.Bytes()[t.buf.Len()-stderrTailLimit:]
		var next bytes.Buffer
		next.Write(trimmed)
		t.buf = next
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(t.buf.String())
}

var _ io.Writer = (*tailBuffer)(nil)

func lastLines(text string, n int) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
