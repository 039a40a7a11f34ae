// Package cryptox implements the authenticated encryption used for secrets
// at rest: AES-256-GCM under a master key derived from the configured
// operator secret.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/securepass/securepass/internal/shared"
)

const (
	// formatVersion is the one-byte tag prepended to every blob so a later
	// cipher or encoding change can dispatch on it at decrypt time.
	formatVersion = 0x01

	nonceSize = 12
	tagSize   = 16
)

// Cipher seals and opens secret strings under a process-wide master key.
// Construct it once at startup and pass it by reference into the services
// that need it; the key is immutable afterwards.
type Cipher struct {
	aead cipher.AEAD
}

// New derives a 256-bit key from the operator-supplied secret by hashing it
// with SHA-256 (normalizing a secret of any length to the AES-256 key size)
// and prepares an AES-GCM AEAD over it.
func New(secret string) (*Cipher, error) {
	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh random 12-byte nonce and returns a
// base64 blob laid out as version || nonce || tag || ciphertext, so the
// whole secret fits into a single text column. The nonce comes from
// crypto/rand on every call; it must never repeat under the same key.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	// Seal appends the tag after the ciphertext; the stored layout keeps
	// the tag in front of the ciphertext instead.
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	blob := make([]byte, 0, 1+nonceSize+len(sealed))
	blob = append(blob, formatVersion)
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt. Any failure (malformed base64, truncated
// input, an unknown format version, a wrong key or a failed integrity
// check) is reported as shared.ErrDecryptionFailed, so callers can treat
// the blob as undecryptable without learning why. Decrypt never panics.
func (c *Cipher) Decrypt(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", shared.ErrDecryptionFailed
	}

	if len(raw) < 1+nonceSize+tagSize || raw[0] != formatVersion {
		return "", shared.ErrDecryptionFailed
	}

	nonce := raw[1 : 1+nonceSize]
	tag := raw[1+nonceSize : 1+nonceSize+tagSize]
	ciphertext := raw[1+nonceSize+tagSize:]

	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", shared.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
