package cleanup

import (
	"log/slog"
	"os"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

type cleanupService struct {
	tempDir string
	logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service sweeping tempDir, empty means os.TempDir()
func NewCleanupService(tempDir string, logger *slog.Logger) port.CleanupService {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &cleanupService{
		tempDir: tempDir,
		logger:  logger,
	}
}
