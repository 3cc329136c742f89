// Package repokit holds the common seams repository implementations bind to.
package repokit

import (
	"context"

	"paychat/internal/platform/store"
)

// Queryer is the read/write surface SQL repos see
type Queryer = store.RowQuerier

// TxRunner runs a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows is a query result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports the effect of a data-modifying command
	CommandTag = store.CommandTag
)

// WithTx runs fn transactionally on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
