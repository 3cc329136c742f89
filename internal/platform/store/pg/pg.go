// Package pg holds the pgxpool-backed Postgres client and its query tracer.
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the subset of pool settings we expose
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
}

// PG pairs the pool with an optional tracer and its slow threshold
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

// seam for tests
var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL, applies MaxConns and the optional pool mutator,
// and builds the client. The tracer may be nil.
func Open(ctx context.Context, cfg Config, tracer QueryTracer, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Close releases the pool. Safe on nil.
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
