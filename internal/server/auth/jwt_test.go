package auth

import (
	"testing"
	"time"

	"github.com/securepass/securepass/internal/server/models"
	"github.com/securepass/securepass/internal/shared"
)

func testUser() *models.User {
	return &models.User{ID: 42, Name: "Alice", Email: "alice@x.com"}
}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(testUser(), secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := GetClaimsFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetClaimsFromToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Name != "Alice" || claims.Email != "alice@x.com" {
		t.Fatalf("identity mismatch: got %q/%q", claims.Name, claims.Email)
	}
}

func TestGetClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(testUser(), secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetClaimsFromToken(tok, secret)
	if err != shared.ErrInvalidToken {
		t.Fatalf("expected shared.ErrInvalidToken, got %v", err)
	}
}

func TestGetClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(testUser(), []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetClaimsFromToken(tok, []byte("wrong-secret"))
	if err != shared.ErrInvalidToken {
		t.Fatalf("expected shared.ErrInvalidToken, got %v", err)
	}
}

func TestGetClaimsFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetClaimsFromToken("not.a.jwt", []byte("k"))
	if err != shared.ErrInvalidToken {
		t.Fatalf("expected shared.ErrInvalidToken, got %v", err)
	}
}
