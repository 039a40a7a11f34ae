package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/securepass/securepass/internal/cryptox"
	"github.com/securepass/securepass/internal/server/models"
	"github.com/securepass/securepass/internal/server/repositories/repomanager"
)

const (
	defaultTitle    = "Generated Password"
	defaultCategory = "generated"

	rotationFreshDays = 30
	rotationStaleDays = 90
)

// RotateAfterDays is the advisory age at which a stored secret is staged
// stale and flagged for rotation.
const RotateAfterDays = rotationStaleDays

// Rotation stages derived from a record's age.
const (
	StageFresh = "fresh"
	StageAging = "aging"
	StageStale = "stale"
)

// SaveCredentialInput carries the plaintext secret plus optional metadata.
type SaveCredentialInput struct {
	Password string
	Title    string
	Website  string
	Username string
	Notes    string
	Category string
}

// SavedCredential is the result of Save: the stored record plus the
// strength score of the plaintext that was just encrypted.
type SavedCredential struct {
	Credential    *models.Credential
	StrengthScore int
}

type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cipher      *cryptox.Cipher
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cipher *cryptox.Cipher) *CredentialService {
	return &CredentialService{
		db:          db,
		repomanager: m,
		cipher:      cipher,
	}
}

// Save encrypts the secret and persists it under the owner. Absent metadata
// fields default to a generic title and category.
func (s *CredentialService) Save(ctx context.Context, userID int64, in SaveCredentialInput) (*SavedCredential, error) {

	title := in.Title
	if title == "" {
		title = defaultTitle
	}
	category := in.Category
	if category == "" {
		category = defaultCategory
	}

	encrypted, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error encrypting secret: %w", err)
	}

	credential := &models.Credential{
		UserID:          userID,
		Title:           title,
		Website:         in.Website,
		Username:        in.Username,
		EncryptedSecret: encrypted,
		Notes:           in.Notes,
		Category:        category,
	}

	credential, err = s.repomanager.Credentials(s.db).Create(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("error creating credential: %w", err)
	}

	return &SavedCredential{Credential: credential, StrengthScore: CalcStrength(in.Password)}, nil
}

// List returns the owner's records newest first. Each secret is decrypted
// only to derive its strength score; the plaintext never leaves this
// method. A blob that fails decryption scores 0 and the record is still
// listed, since its metadata is intact.
func (s *CredentialService) List(ctx context.Context, userID int64) ([]models.CredentialView, error) {

	records, err := s.repomanager.Credentials(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing credentials: %w", err)
	}

	now := time.Now()

	views := make([]models.CredentialView, 0, len(records))
	for _, c := range records {
		score := 0
		if plaintext, err := s.cipher.Decrypt(c.EncryptedSecret); err == nil {
			score = CalcStrength(plaintext)
		}

		age := AgeDays(now, c.CreatedAt)
		stage := RotationStage(age)

		views = append(views, models.CredentialView{
			ID:                c.ID,
			Title:             c.Title,
			Website:           c.Website,
			Username:          c.Username,
			Category:          c.Category,
			CreatedAt:         c.CreatedAt,
			StrengthScore:     score,
			AgeDays:           age,
			RotationStage:     stage,
			RotateRecommended: stage == StageStale,
		})
	}

	return views, nil
}

// Delete removes the owner's record. Whether the id does not exist or
// belongs to another account, the caller sees the same not-found outcome.
func (s *CredentialService) Delete(ctx context.Context, userID int64, id int64) error {
	return s.repomanager.Credentials(s.db).Delete(ctx, id, userID)
}

// AgeDays is the whole number of days between createdAt and now, clamped
// to zero so clock skew cannot produce a negative age.
func AgeDays(now time.Time, createdAt time.Time) int {
	days := int(now.Sub(createdAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// RotationStage buckets a record's age: fresh under 30 days, aging up to
// 89, stale from 90 on.
func RotationStage(ageDays int) string {
	switch {
	case ageDays < rotationFreshDays:
		return StageFresh
	case ageDays < rotationStaleDays:
		return StageAging
	default:
		return StageStale
	}
}
