// Package dbpkg opens the read model database and abstracts its query surface for repositories.
package dbpkg

import (
	"context"
	"database/sql"
)

// SQLInterface is satisfied by both *sql.DB and *sql.Tx, so repositories and seed helpers run
// inside or outside a transaction.
type SQLInterface interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
