package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/CaseOpener_Go/internal/logger"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// validID reports whether id can be stored in a UUID column. Ids that cannot
// never match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isPgError reports whether err is a Postgres error with the given code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// numericToFloat64 safely converts pgtype.Numeric to float64.
func numericToFloat64(n pgtype.Numeric) (float64, error) {
	val, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToConvertNumeric, err)
	}
	return val.Float64, nil
}

// userLockKey derives a stable advisory lock key for a user.
func userLockKey(userID string) int64 {
	sum := sha256.Sum256([]byte("user:" + userID))
	return int64(binary.BigEndian.Uint64(sum[:8]) & userLockMask)
}
