package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager opens and finishes the transactions of a unit of work.
// RunInTx wraps a single autonomous save; Begin hands out a transaction the
// caller finishes itself.
type TxManager struct {
	pool Pool
}

// NewTxManager creates a TxManager over pool.
func NewTxManager(pool Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin opens a transaction at the server's default isolation level.
func (m *TxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

// RunInTx executes fn within a fresh transaction and commits when fn
// succeeds. An error or panic from fn rolls the transaction back; the panic
// is re-raised. Calls do not nest.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return abort(ctx, tx, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// abort rolls tx back after cause. cause stays matchable with errors.Is
// even when the rollback fails too.
func abort(ctx context.Context, tx pgx.Tx, cause error) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Join(cause, fmt.Errorf("rollback transaction: %w", err))
	}
	return cause
}
