// Package credentials persists saved password records. Every operation is
// scoped by owner id; a record owned by someone else behaves exactly like a
// missing record.
package credentials

import (
	"context"

	"github.com/securepass/securepass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, credential *models.Credential) (*models.Credential, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Credential, error)
	Delete(ctx context.Context, id int64, userID int64) error
	GetEncryptedSecret(ctx context.Context, id int64, userID int64) (string, error)
}
