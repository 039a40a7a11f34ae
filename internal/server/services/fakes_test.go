package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/securepass/securepass/internal/dbx"
	"github.com/securepass/securepass/internal/server/models"
	credsrepo "github.com/securepass/securepass/internal/server/repositories/credentials"
	"github.com/securepass/securepass/internal/server/repositories/repomanager"
	sharesrepo "github.com/securepass/securepass/internal/server/repositories/sharetokens"
	usersrepo "github.com/securepass/securepass/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	lastEmailCreated string
	lastEmailQueried string

	touchErr    error
	touchCalled bool
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastEmailCreated = u.Email
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.lastEmailQueried = email
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) TouchLastLogin(ctx context.Context, userID int64) error {
	f.touchCalled = true
	return f.touchErr
}

type fakeCredentialsRepo struct {
	createErr error

	listOut []*models.Credential
	listErr error

	deleteErr error

	blobOut string
	blobErr error
}

func (f *fakeCredentialsRepo) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = 1
	return c, nil
}

func (f *fakeCredentialsRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Credential, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeCredentialsRepo) Delete(ctx context.Context, id int64, userID int64) error {
	return f.deleteErr
}

func (f *fakeCredentialsRepo) GetEncryptedSecret(ctx context.Context, id int64, userID int64) (string, error) {
	if f.blobErr != nil {
		return "", f.blobErr
	}
	return f.blobOut, nil
}

type fakeShareTokensRepo struct {
	created   *models.ShareToken
	createErr error

	findOut *models.ShareToken
	findErr error
}

func (f *fakeShareTokensRepo) Create(ctx context.Context, token *models.ShareToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = token
	return nil
}

func (f *fakeShareTokensRepo) Find(ctx context.Context, token string) (*models.ShareToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeCredentialsRepo
	s *fakeShareTokensRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository        { return m.u }
func (m *fakeRepoManager) Credentials(db dbx.DBTX) credsrepo.Repository  { return m.c }
func (m *fakeRepoManager) ShareTokens(db dbx.DBTX) sharesrepo.Repository { return m.s }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
