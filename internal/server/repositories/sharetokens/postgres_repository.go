package sharetokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/securepass/securepass/internal/dbx"
	"github.com/securepass/securepass/internal/server/models"
	"github.com/securepass/securepass/internal/shared"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.ShareToken) error {

	query :=
		`INSERT INTO share_tokens (token, password_encrypted, expires_at, user_id)
         VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		token.Token, token.EncryptedSecret, token.ExpiresAt, token.UserID)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// Find returns the row for the token whether or not it has expired; the
// caller decides how to treat an expired row.
func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.ShareToken, error) {

	query :=
		`SELECT token, password_encrypted, expires_at, user_id FROM share_tokens
		 WHERE token = $1
		 `

	st := &models.ShareToken{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&st.Token, &st.EncryptedSecret, &st.ExpiresAt, &st.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return st, nil
}
