package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bookings/internal/dbx"
	"github.com/dmitrijs2005/bookings/internal/server/repositories/bookings"
	"github.com/dmitrijs2005/bookings/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so that the same
// service code runs against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Bookings(db dbx.DBTX) bookings.Repository
}
