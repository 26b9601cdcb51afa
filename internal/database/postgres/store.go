// Package postgres implements the repository contracts on PostgreSQL with pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CaseOpener_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	queries
	pool *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store over pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		queries: queries{db: pool},
		pool:    pool,
	}
}

// BeginTx starts a transaction whose game state reads lock the row.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	pgxTx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &tx{
		queries: queries{db: pgxTx, forUpdate: true},
		tx:      pgxTx,
	}, nil
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the underlying pool
func (s *Store) Close() {
	s.pool.Close()
}

type tx struct {
	queries
	tx pgx.Tx
}

// LockUser takes a transaction-scoped advisory lock keyed on the user, so
// concurrent operations for one user run one after another.
func (t *tx) LockUser(ctx context.Context, userID string) error {
	if _, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userLockKey(userID)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockUser, err)
	}
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}
