package store

import (
	"context"
	"errors"
	"time"

	"paychat/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgAdapter bridges pg.PG to the RowQuerier/TxRunner seams. Every call
// is reported to the pool's tracer (when one is set) with elapsed time
// and a slow flag derived from the configured threshold.
type pgAdapter struct {
	p *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter { return &pgAdapter{p: p} }

// trace reports one finished statement to tr. slowMS < 0 disables the
// slow flag entirely.
func trace(ctx context.Context, tr pg.QueryTracer, slowMS int, sql string, args []any, start time.Time, err error) {
	if tr == nil {
		return
	}
	us := time.Since(start).Microseconds()
	tr.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      slowMS >= 0 && us >= int64(slowMS)*1000,
	})
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.p.Pool.Exec(ctx, sql, args...)
	trace(ctx, a.p.Tracer, a.p.SlowMs, sql, args, start, err)
	return cmdTag{ct}, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	trace(ctx, a.p.Tracer, a.p.SlowMs, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowIter{rs: rs}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	// the event fires after Scan so the scan error lands in the trace
	return scanHook{
		inner: a.p.Pool.QueryRow(ctx, sql, args...),
		done: func(scanErr error) {
			trace(ctx, a.p.Tracer, a.p.SlowMs, sql, args, start, scanErr)
		},
	}
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	q := txQuerier{tx: tx, tracer: a.p.Tracer, slowMS: a.p.SlowMs}
	if err := fn(q); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// thin wrappers lifting pgx types onto our Row/Rows/CommandTag seams

type scanHook struct {
	inner pgx.Row
	done  func(error)
}

func (s scanHook) Scan(dst ...any) error {
	err := s.inner.Scan(dst...)
	if s.done != nil {
		s.done(err)
	}
	return err
}

type rowIter struct{ rs pgx.Rows }

func (it rowIter) Next() bool            { return it.rs.Next() }
func (it rowIter) Scan(dst ...any) error { return it.rs.Scan(dst...) }
func (it rowIter) Err() error            { return it.rs.Err() }
func (it rowIter) Close()                { it.rs.Close() }
func (it rowIter) Columns() []string {
	fields := it.rs.FieldDescriptions()
	names := make([]string, len(fields))
	for i := range fields {
		names[i] = string(fields[i].Name)
	}
	return names
}

type cmdTag struct{ ct pgconn.CommandTag }

func (c cmdTag) String() string      { return c.ct.String() }
func (c cmdTag) RowsAffected() int64 { return c.ct.RowsAffected() }

// txQuerier satisfies RowQuerier on top of an open pgx.Tx and traces
// statements the same way the pool adapter does.
type txQuerier struct {
	tx     pgx.Tx
	tracer pg.QueryTracer
	slowMS int
}

func (t txQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.tx.Exec(ctx, sql, args...)
	trace(ctx, t.tracer, t.slowMS, sql, args, start, err)
	return cmdTag{ct}, err
}

func (t txQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.Query(ctx, sql, args...)
	trace(ctx, t.tracer, t.slowMS, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowIter{rs: rs}, nil
}

func (t txQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return scanHook{
		inner: t.tx.QueryRow(ctx, sql, args...),
		done: func(scanErr error) {
			trace(ctx, t.tracer, t.slowMS, sql, args, start, scanErr)
		},
	}
}
