package storage

import (
	"context"

	"github.com/chrsmk/meeple-market/pkg/models"
)

// UserStore defines the interface for profile records synced from the
// identity provider.
type UserStore interface {
	// PutUser creates or replaces a user profile.
	PutUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user profile by its ID.
	GetUser(ctx context.Context, userID string) (*models.User, error)
}
