// Package store fronts the optional storage backends behind one facade.
package store

import (
	"context"
	"errors"
	"fmt"

	"paychat/internal/platform/logger"
)

// Store holds whichever backends were opened. The zero value is usable
// and simply has nothing attached.
type Store struct {
	// Log is handed to subclients. Zero means a silent zerolog logger.
	Log logger.Logger

	// PG is the postgres sql seam, nil when the ledger runs off CSV
	PG TxRunner
}

// Row is the single row scan contract
type Row interface {
	Scan(dest ...any) error
}

// Rows is the minimal result set surface repos iterate over
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports the outcome of an Exec
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read/write sql surface repos bind to
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner adds function scoped transactions on top of RowQuerier
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open builds a Store with the backends cfg enables. Disabled backends
// stay nil on the returned Store.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	// normalize a zero logger so subclients never nil-check
	s.Log = s.Log.With().Logger()

	if cfg.PG.Enabled {
		pgClient, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = pgClient
	}

	return s, nil
}

// Guard pings every attached seam and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	if s.PG != nil {
		if p, ok := any(s.PG).(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("pg: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close shuts down attached backends. Nil seams are skipped.
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
