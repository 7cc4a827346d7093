package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/instabids/internal/dbx"
	"github.com/dmitrijs2005/instabids/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/instabids/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/instabids/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a connection or transaction,
// so services can run several of them inside one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
