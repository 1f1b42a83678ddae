package repomanager

import (
	"context"
	"database/sql"

	"github.com/charafmezdari/portfolio/internal/dbx"
	"github.com/charafmezdari/portfolio/internal/server/repositories/albums"
	"github.com/charafmezdari/portfolio/internal/server/repositories/images"
	"github.com/charafmezdari/portfolio/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can run
// several repositories against one transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Albums(db dbx.DBTX) albums.Repository
	Images(db dbx.DBTX) images.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
