// Package auth issues and verifies the signed bearer tokens that gate the
// credential endpoints. Tokens are self-contained: nothing is stored
// server-side, and a token stays valid until its natural expiry.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/securepass/securepass/internal/server/models"
	"github.com/securepass/securepass/internal/shared"
)

// Claims carried by a session token: the registered claims plus the
// account identity asserted at login.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// GenerateToken signs the user's identity with HS256 and embeds an
// absolute expiry validityDuration from now.
func GenerateToken(user *models.User, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetClaimsFromToken checks signature and expiry. Bad signature, expired
// and malformed tokens all collapse into shared.ErrInvalidToken; the
// caller never learns which check failed.
func GetClaimsFromToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, shared.ErrInvalidToken
	}

	return claims, nil
}
