package cleanup_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/service/cleanup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestCleanupService_CleanupStaleTempFiles(t *testing.T) {

	t.Run("removes only stale pipeline files", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		dir := t.TempDir()
		now := time.Now()
		stale := touch(t, dir, domain.TempFilePrefix+"old.mp4", now.Add(-3*time.Hour))
		staleCompressed := touch(t, dir, domain.TempFilePrefix+"compressed-old.jpg", now.Add(-3*time.Hour))
		fresh := touch(t, dir, domain.TempFilePrefix+"new.mp4", now)
		foreign := touch(t, dir, "someone-else.tmp", now.Add(-3*time.Hour))
		service := cleanup.NewCleanupService(dir, slog.Default())

		// Act
		removed, err := service.CleanupStaleTempFiles(ctx, now.Add(-2*time.Hour))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, removed)
		assert.NoFileExists(t, stale)
		assert.NoFileExists(t, staleCompressed)
		assert.FileExists(t, fresh)
		assert.FileExists(t, foreign)
	})

	t.Run("empty dir", func(t *testing.T) {
		// Arrange
		service := cleanup.NewCleanupService(t.TempDir(), slog.Default())

		// Act
		removed, err := service.CleanupStaleTempFiles(context.Background(), time.Now())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, removed)
	})

	t.Run("missing dir", func(t *testing.T) {
		// Arrange
		service := cleanup.NewCleanupService(filepath.Join(t.TempDir(), "nope"), slog.Default())

		// Act
		_, err := service.CleanupStaleTempFiles(context.Background(), time.Now())

		// Assert
		assert.Error(t, err)
	})
}
