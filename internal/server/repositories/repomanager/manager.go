// Package repomanager hands out repositories over a shared DB handle and
// owns schema migrations. Repositories are created against a dbx.DBTX so
// the same code runs both directly on *sql.DB and inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/securepass/securepass/internal/dbx"
	"github.com/securepass/securepass/internal/server/repositories/credentials"
	"github.com/securepass/securepass/internal/server/repositories/sharetokens"
	"github.com/securepass/securepass/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Credentials(db dbx.DBTX) credentials.Repository
	ShareTokens(db dbx.DBTX) sharetokens.Repository
}
