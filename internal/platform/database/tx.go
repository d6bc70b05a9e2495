package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/platform/tx"
)

// defaultTxTimeout bounds a unit of work when the caller set no deadline.
const defaultTxTimeout = 5 * time.Second

// TxRunner opens a SQL transaction, carries it through the context so every
// store joins it, and commits only when fn succeeds.
type TxRunner struct {
	db      *sql.DB
	timeout time.Duration
}

func NewTxRunner(db *sql.DB, timeout time.Duration) *TxRunner {
	return &TxRunner{db: db, timeout: timeout}
}

func (t *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := tx.From(ctx); ok {
		return fn(ctx)
	}

	ctx, cancel, err := boundContext(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	sqlTx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to begin transaction")
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	if err := fn(tx.WithTx(ctx, sqlTx)); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit transaction")
	}
	return nil
}

// MemoryTx gives in-memory stores the all-or-nothing behaviour of TxRunner.
// Every unit of work runs under one process-wide lock with a tx.Journal in its
// context; when fn fails or panics the journal reverts the writes made so far.
// Units of work cross pilots (accepting a contract touches its payload), so the
// lock is not sharded.
type MemoryTx struct {
	mu      sync.Mutex
	timeout time.Duration
}

func NewMemoryTx(timeout time.Duration) *MemoryTx {
	return &MemoryTx{timeout: timeout}
}

func (t *MemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := tx.JournalFrom(ctx); ok {
		return fn(ctx)
	}

	ctx, cancel, err := boundContext(ctx, t.timeout)
	if err != nil {
		return err
	}
	defer cancel()

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	journal := &tx.Journal{}
	defer func() {
		if p := recover(); p != nil {
			journal.Rollback()
			panic(p)
		}
		if err != nil {
			journal.Rollback()
		}
	}()
	return fn(tx.WithJournal(ctx, journal))
}

func boundContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if timeout <= 0 {
		timeout = defaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}, nil
	}
	bounded, cancel := context.WithTimeout(ctx, timeout)
	return bounded, cancel, nil
}
