package models

import "time"

// ShareToken is an anonymous, time-boxed capability for one secret. It
// carries a copy of the credential's encrypted blob taken at issuance, so
// later changes to the record do not affect an outstanding share. Rows are
// never mutated after creation and are not swept on expiry.
type ShareToken struct {
	Token           string
	EncryptedSecret string
	ExpiresAt       time.Time
	UserID          int64
}
