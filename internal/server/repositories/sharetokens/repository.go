// Package sharetokens persists share tokens: anonymous, time-boxed
// capabilities for retrieving one encrypted secret. Expiry is enforced by
// the service at read time; rows are never updated or swept here.
package sharetokens

import (
	"context"

	"github.com/securepass/securepass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.ShareToken) error
	Find(ctx context.Context, token string) (*models.ShareToken, error)
}
