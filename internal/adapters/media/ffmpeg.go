package media

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

const maxOutputInError = 512

// FFmpegRunner runs ffmpeg transcodes and implements port.TranscodeRunner
type FFmpegRunner struct {
	path   string
	logger *slog.Logger
}

// NewFFmpegRunner resolves the ffmpeg binary, path may be a bare name looked up in PATH
func NewFFmpegRunner(path string, logger *slog.Logger) (*FFmpegRunner, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found: %w", err)
	}
	return &FFmpegRunner{path: resolved, logger: logger}, nil
}

// CheckAvailable runs "ffmpeg -version"
func (f *FFmpegRunner) CheckAvailable(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, f.path, "-version")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg unavailable: %w: %s", err, truncate(output))
	}
	return nil
}

// Transcode runs ffmpeg on inputPath writing outputPath, the process is killed when ctx is done
func (f *FFmpegRunner) Transcode(ctx context.Context, inputPath string, outputPath string, options []string) error {
	args := buildArgs(inputPath, outputPath, options)

	f.logger.Debug("running ffmpeg", slog.Any("args", args))

	cmd := exec.CommandContext(ctx, f.path, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg interrupted: %w", ctx.Err())
		}
		return fmt.Errorf("ffmpeg failed: %w: %s", err, truncate(output))
	}
	return nil
}

func buildArgs(inputPath string, outputPath string, options []string) []string {
	args := make([]string, 0, len(options)+7)
	args = append(args, "-hide_banner", "-loglevel", "error", "-y", "-i", inputPath)
	args = append(args, options...)
	return append(args, outputPath)
}

func truncate(output []byte) string {
	text := strings.TrimSpace(string(output))
	if len(text) > maxOutputInError {
		return text[len(text)-maxOutputInError:]
	}
	return text
}

// UnavailableRunner fails every transcode with Err, so videos keep their original encoding
type UnavailableRunner struct {
	Err error
}

func (u UnavailableRunner) Transcode(_ context.Context, _ string, _ string, _ []string) error {
	return u.Err
}
