package modkit

import (
	"paychat/internal/modkit/repokit"
	"paychat/internal/platform/config"
	"paychat/internal/platform/logger"
)

// Deps is the shared dependency bundle handed to every module.
// Pure wiring, no behavior. PG is nil when the ledger runs off CSV.
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// ZeroOK signals that zero-value deps are fine in tests.
// Consumers still nil-check optional stores.
func (d Deps) ZeroOK() bool { return true }
