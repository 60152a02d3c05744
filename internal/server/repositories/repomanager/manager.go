// Package repomanager wires concrete repositories to a database handle and
// owns schema migrations. Repositories are constructed per call so that the
// same manager can hand out plain or transactional instances.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/apetrenko/contentgen/internal/dbx"
	"github.com/apetrenko/contentgen/internal/server/repositories/contents"
	"github.com/apetrenko/contentgen/internal/server/repositories/templates"
	"github.com/apetrenko/contentgen/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contents(db dbx.DBTX) contents.Repository
	Templates(db dbx.DBTX) templates.Repository
}
