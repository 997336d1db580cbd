package deps

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpegVersion runs `ffmpeg -version` and returns the first line, which
// carries the version banner ("ffmpeg version N.n ...").
func FFmpegVersion(ctx context.Context, binary string) (string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, binary, "-version")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("ffmpeg version: %w", err)
	}
	line, _, _ := strings.Cut(string(output), "\n")
	return strings.TrimSpace(line), nil
}

// ListEncoders runs `ffmpeg -hide_banner -encoders` and returns the encoder
// names it advertises.
func ListEncoders(ctx context.Context, binary string) ([]string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, binary, "-hide_banner", "-encoders")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg encoders: %w", err)
	}
	return ParseEncoderList(string(output)), nil
}

// ParseEncoderList extracts encoder names from `ffmpeg -encoders` output.
//
// The listing has a header terminated by a "------" line, then one encoder
// per line: capability flags, a space, the encoder name, a space, and a
// description.
func ParseEncoderList(output string) []string {
	var names []string
	inBody := false
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !inBody {
			if strings.Contains(line, "-----") {
				inBody = true
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		names = append(names, fields[1])
	}
	return names
}

// HasEncoder reports whether name appears in the encoder list.
func HasEncoder(encoders []string, name string) bool {
	for _, encoder := range encoders {
		if strings.EqualFold(encoder, name) {
			return true
		}
	}
	return false
}
