package cleanup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// CleanupStaleTempFiles removes pipeline temp files last modified before olderThan.
// Files a crashed request never got to remove are the only expected matches.
func (c *cleanupService) CleanupStaleTempFiles(ctx context.Context, olderThan time.Time) (int, error) {
	entries, err := os.ReadDir(c.tempDir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), domain.TempFilePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}

		path := filepath.Join(c.tempDir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("failed to remove stale temp file", "path", path, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		c.logger.Info("stale temp files removed", "count", removed, "dir", c.tempDir)
	}
	return removed, nil
}
