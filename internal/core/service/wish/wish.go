package wish

import (
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/port"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type wishService struct {
	repo      port.WishRepository
	mediaRepo port.MediaRepository
}

// NewWishService creates a new wish service.
// The media repository contributes media likes to the overview totals.
func NewWishService(repo port.WishRepository, mediaRepo port.MediaRepository) port.WishService {
	return &wishService{repo: repo, mediaRepo: mediaRepo}
}
