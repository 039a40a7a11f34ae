// Package users persists account records. Lookups are by normalized
// (lowercase) email; callers are responsible for the normalization.
package users

import (
	"context"

	"github.com/securepass/securepass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, userID int64) error
}
