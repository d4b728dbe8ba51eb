// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/srstalent/talentconnect/internal/dbx"
	"github.com/srstalent/talentconnect/internal/server/repositories/applications"
	"github.com/srstalent/talentconnect/internal/server/repositories/listings"
	"github.com/srstalent/talentconnect/internal/server/repositories/refreshtokens"
	"github.com/srstalent/talentconnect/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Listings(db dbx.DBTX) listings.Repository
	Applications(db dbx.DBTX) applications.Repository

	// InTx runs fn atomically. The Postgres manager wraps fn in a database
	// transaction and hands it the transactional handle; managers without
	// transactions just run fn.
	InTx(ctx context.Context, db *sql.DB, fn func(tx dbx.DBTX) error) error
}
