package media_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/adapters/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func writePNG(t *testing.T, width int, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, height/2, color.RGBA{R: 200, A: 255})
	}
	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func decodeConfig(t *testing.T, path string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg, format
}

func TestJPEGEncoder_EncodeJPEG(t *testing.T) {
	encoder := media.NewJPEGEncoder()
	ctx := context.Background()

	t.Run("fits large image within bound keeping aspect", func(t *testing.T) {
		// Arrange
		source := writePNG(t, 400, 200)
		output := filepath.Join(t.TempDir(), "out.jpg")

		// Act
		err := encoder.EncodeJPEG(ctx, source, output, 100, 75)

		// Assert
		require.NoError(t, err)
		cfg, format := decodeConfig(t, output)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 50, cfg.Height)
	})

	t.Run("never upscales", func(t *testing.T) {
		// Arrange
		source := writePNG(t, 40, 30)
		output := filepath.Join(t.TempDir(), "out.jpg")

		// Act
		err := encoder.EncodeJPEG(ctx, source, output, 1920, 75)

		// Assert
		require.NoError(t, err)
		cfg, _ := decodeConfig(t, output)
		assert.Equal(t, 40, cfg.Width)
		assert.Equal(t, 30, cfg.Height)
	})

	t.Run("undecodable input", func(t *testing.T) {
		// Arrange
		source := filepath.Join(t.TempDir(), "broken.jpg")
		require.NoError(t, os.WriteFile(source, []byte("not an image"), 0o600))
		output := filepath.Join(t.TempDir(), "out.jpg")

		// Act
		err := encoder.EncodeJPEG(ctx, source, output, 1920, 75)

		// Assert
		require.Error(t, err)
		assert.NoFileExists(t, output)
	})
}

// fakeFFmpeg writes a shell script standing in for ffmpeg
func fakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a unix shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700))
	return path
}

func TestFFmpegRunner_Transcode(t *testing.T) {

	t.Run("passes input, options and output in order", func(t *testing.T) {
		// Arrange
		argsFile := filepath.Join(t.TempDir(), "args.txt")
		script := fakeFFmpeg(t, `echo "$@" > `+argsFile+`; for last; do :; done; echo out > "$last"`)
		runner, err := media.NewFFmpegRunner(script, discardLogger)
		require.NoError(t, err)
		output := filepath.Join(t.TempDir(), "out.mp4")

		// Act
		err = runner.Transcode(context.Background(), "/tmp/in.mov", output, []string{"-c", "copy"})

		// Assert
		require.NoError(t, err)
		recorded, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, "-hide_banner -loglevel error -y -i /tmp/in.mov -c copy "+output, strings.TrimSpace(string(recorded)))
		assert.FileExists(t, output)
	})

	t.Run("non-zero exit carries stderr", func(t *testing.T) {
		// Arrange
		script := fakeFFmpeg(t, `echo "Unknown encoder 'libx264'" >&2; exit 1`)
		runner, err := media.NewFFmpegRunner(script, discardLogger)
		require.NoError(t, err)

		// Act
		err = runner.Transcode(context.Background(), "in.mov", "out.mp4", nil)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "libx264")
	})

	t.Run("deadline kills the process", func(t *testing.T) {
		// Arrange
		script := fakeFFmpeg(t, `exec sleep 5`)
		runner, err := media.NewFFmpegRunner(script, discardLogger)
		require.NoError(t, err)
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		started := time.Now()

		// Act
		err = runner.Transcode(ctx, "in.mov", "out.mp4", nil)

		// Assert
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(started), 3*time.Second)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := media.NewFFmpegRunner(filepath.Join(t.TempDir(), "nope"), discardLogger)
		require.Error(t, err)
	})
}
