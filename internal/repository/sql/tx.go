package sql

import (
	"context"
	"database/sql"
	"fmt"

	"productcatalog/internal/apperr"
)

// withTx executes fn within a database transaction. The multi-statement
// deletes (cascade, set-null, restrict check) go through here so they stay
// all-or-nothing.
func withTx(ctx context.Context, db *sql.DB, op string, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.NewStorage(op, fmt.Errorf("failed to begin transaction: %w", err))
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return apperr.NewStorage(op, fmt.Errorf("failed to rollback transaction: %w (original error: %v)", rbErr, err))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperr.NewStorage(op, fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}
