package repository

import (
	"context"
	"errors"

	"github.com/osse101/CaseOpener_Go/internal/logger"
)

// ErrTxClosed is returned by Commit or Rollback on a finished transaction.
var ErrTxClosed = errors.New("tx is closed")

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// WithTx runs fn inside a transaction, committing on success.
func WithTx(ctx context.Context, store Store, fn func(tx Tx) error) error {
	tx, err := store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
