package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories that write more than one
// table per operation.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Rolling back a finished transaction
	// is not an error.
	Rollback(ctx context.Context, tx pgx.Tx) error

	// InTx runs fn inside a transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
