package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/skinadvisor/internal/db"
)

// FailOnNthExecUoW runs transactions against DB but makes the FailOn-th
// ExecContext inside a transaction return Err, counting from 1. Reads are
// never failed. Used to check that ending a session is all-or-nothing.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// countingTx is confined to the goroutine running the transaction callback.
type countingTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.execs++
	if c.execs == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
