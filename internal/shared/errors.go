// Package shared defines sentinel errors and small helpers used across
// the server layers. Callers should match these values with errors.Is.
package shared

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Service-level errors (generic flow control).
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors. Bad signature, expired and malformed tokens all map
	// to the same value so callers cannot tell the cases apart.
	ErrInvalidToken = errors.New("invalid token")

	// Cipher errors. Malformed input, a wrong key and a failed integrity
	// check are deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// Share token lifecycle errors.
	ErrShareExpired = errors.New("share token expired")
)
