package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// WithTx runs fn inside a single transaction. Commit happens only when fn
// returns nil; any error or panic rolls everything back, so a failed
// transition leaves no partial state.
func WithTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) (err error) {
	var tx pgx.Tx
	tx, err = db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("failed to commit transaction: %w", err)
			}
		}
	}()

	err = fn(tx)
	return err
}
