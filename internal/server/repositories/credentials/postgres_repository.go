package credentials

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

func (r *PostgresRepository) Create(ctx context.Context, credential *models.Credential) (*models.Credential, error) {

	query :=
		`INSERT INTO saved_passwords (user_id, title, website, username, password_encrypted, notes, category)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		credential.UserID, credential.Title, credential.Website, credential.Username,
		credential.EncryptedSecret, credential.Notes, credential.Category).
		Scan(&credential.ID, &credential.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

// ListByUser returns the owner's records newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Credential, error) {

	query :=
		`SELECT id, user_id, title, website, username, password_encrypted, notes, category, is_favorite, created_at
		 FROM saved_passwords
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Credential
	for rows.Next() {
		c := &models.Credential{}
		err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Website, &c.Username,
			&c.EncryptedSecret, &c.Notes, &c.Category, &c.IsFavorite, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Delete removes the record matching both id and owner. Zero affected rows
// means not found, whether the id is absent or owned by another account.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, userID int64) error {

	query :=
		`DELETE FROM saved_passwords
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return shared.ErrNotFound
	}

	return nil
}

// GetEncryptedSecret returns the stored cipher blob for the owner's record
// without decrypting it.
func (r *PostgresRepository) GetEncryptedSecret(ctx context.Context, id int64, userID int64) (string, error) {

	query :=
		`SELECT password_encrypted FROM saved_passwords
		 WHERE id = $1 AND user_id = $2
		 `

	var blob string
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", shared.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return blob, nil
}
