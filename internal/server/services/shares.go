package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/securepass/securepass/internal/cryptox"
	"github.com/securepass/securepass/internal/dbx"
	"github.com/securepass/securepass/internal/server/config"
	"github.com/securepass/securepass/internal/server/models"
	"github.com/securepass/securepass/internal/server/repositories/repomanager"
	"github.com/securepass/securepass/internal/shared"
)

// shareTokenBytes is the entropy of a share token; hex encoding doubles it
// to a 32-character string.
const shareTokenBytes = 16

type ShareService struct {
	db                 *sql.DB
	repomanager        repomanager.RepositoryManager
	cipher             *cryptox.Cipher
	shareTokenValidity time.Duration
}

func NewShareService(db *sql.DB, m repomanager.RepositoryManager, cipher *cryptox.Cipher, cfg *config.Config) *ShareService {
	return &ShareService{
		db:                 db,
		repomanager:        m,
		cipher:             cipher,
		shareTokenValidity: cfg.ShareTokenValidityDuration,
	}
}

// SharePath returns the URL fragment a client appends to its origin to
// retrieve a shared secret.
func SharePath(token string) string {
	return "/api/passwords/shared/" + token
}

// Create mints a share token for the owner's record: the record's
// already-encrypted blob is copied into a token row expiring
// shareTokenValidity from now. The ownership check and the insert run in
// one transaction so a concurrently deleted record cannot leave an orphan
// token. A record that is absent or owned by someone else is reported as
// not found.
func (s *ShareService) Create(ctx context.Context, userID int64, credentialID int64) (string, error) {

	token, err := shared.MakeRandHexString(shareTokenBytes)
	if err != nil {
		return "", shared.ErrInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		blob, err := s.repomanager.Credentials(tx).GetEncryptedSecret(ctx, credentialID, userID)
		if err != nil {
			return err
		}

		return s.repomanager.ShareTokens(tx).Create(ctx, &models.ShareToken{
			Token:           token,
			EncryptedSecret: blob,
			ExpiresAt:       time.Now().Add(s.shareTokenValidity),
			UserID:          userID,
		})
	})

	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrNotFound
		}
		return "", fmt.Errorf("error creating share token: %w", err)
	}

	return SharePath(token), nil
}

// Resolve exchanges a share token for the plaintext secret. No session is
// required: the token itself is the capability. An unknown token is not
// found; a known token past its expiry is expired, and stays expired on
// every later attempt while the row is retained.
func (s *ShareService) Resolve(ctx context.Context, token string) (string, error) {

	st, err := s.repomanager.ShareTokens(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrNotFound
		}
		return "", shared.ErrInternal
	}

	if st.ExpiresAt.Before(time.Now()) {
		return "", shared.ErrShareExpired
	}

	return s.cipher.Decrypt(st.EncryptedSecret)
}
