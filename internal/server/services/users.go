// Package services implements the application logic between the HTTP layer
// and the repositories: accounts and sessions, credential storage, and
// share links.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/securepass/securepass/internal/server/auth"
	"github.com/securepass/securepass/internal/server/config"
	"github.com/securepass/securepass/internal/server/models"
	"github.com/securepass/securepass/internal/server/repositories/repomanager"
	"github.com/securepass/securepass/internal/shared"
)

// bcryptCost balances offline brute-force resistance against interactive
// login latency.
const bcryptCost = 10

// AuthResult pairs the account with a freshly minted session token.
type AuthResult struct {
	User  *models.User
	Token string
}

type UserService struct {
	db                   *sql.DB
	repomanager          repomanager.RepositoryManager
	jwtSecret            []byte
	sessionTokenValidity time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                   db,
		repomanager:          m,
		jwtSecret:            []byte(cfg.JWTSecret),
		sessionTokenValidity: cfg.SessionTokenValidityDuration,
	}
}

// Register creates an account under the lowercased email and logs it in.
// A colliding email surfaces as shared.ErrDuplicateEmail, never as a
// generic storage error.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.ErrInternal
	}

	user := &models.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicateEmail) {
			return nil, shared.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.sessionTokenValidity)
	if err != nil {
		return nil, shared.ErrInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates by normalized email and password. An unknown email
// and a wrong password produce the same shared.ErrInvalidCredentials, so
// the endpoint cannot be used as an account-existence oracle. The
// last-login update is fire-and-forget: a failure there never fails the
// login itself.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, shared.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, shared.ErrInvalidCredentials
	}

	_ = repo.TouchLastLogin(ctx, user.ID)

	token, err := auth.GenerateToken(user, s.jwtSecret, s.sessionTokenValidity)
	if err != nil {
		return nil, shared.ErrInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}
