package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles a connection pool with its Queries and adds transaction
// support on top.
type Store struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Queries: New(pool), pool: pool}
}

// InTx runs fn inside a single transaction. fn receives a Querier scoped to
// that transaction; returning an error rolls everything back.
func (s *Store) InTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&txQueries{Queries: New(tx), tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// txQueries is the Querier handed to InTx callbacks.
type txQueries struct {
	*Queries
	tx pgx.Tx
}

// InsertSaleItem runs under a savepoint (a nested pgx transaction) so that a
// rejected line-item leaves the enclosing transaction committable. Without
// this, Postgres aborts the whole transaction and the sale row would be lost
// with it.
func (q *txQueries) InsertSaleItem(ctx context.Context, arg InsertSaleItemParams) error {
	sp, err := q.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}
	if err := New(sp).InsertSaleItem(ctx, arg); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}
	return sp.Commit(ctx)
}
