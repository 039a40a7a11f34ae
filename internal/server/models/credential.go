package models

import "time"

// Credential is a saved password record. EncryptedSecret is the cipher
// blob; the plaintext is never persisted.
type Credential struct {
	ID              int64
	UserID          int64
	Title           string
	Website         string
	Username        string
	EncryptedSecret string
	Notes           string
	Category        string
	IsFavorite      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastAccessed    *time.Time
}

// CredentialView is the list representation of a credential: metadata plus
// scores derived from the decrypted secret, never the secret itself.
type CredentialView struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Website           string    `json:"website"`
	Username          string    `json:"username"`
	Category          string    `json:"category"`
	CreatedAt         time.Time `json:"created_at"`
	StrengthScore     int       `json:"strength_score"`
	AgeDays           int       `json:"age_days"`
	RotationStage     string    `json:"rotation_stage"`
	RotateRecommended bool      `json:"rotate_recommended"`
}
