// Package module holds the contract every mounted service module satisfies
// plus a small registry for wiring port sets between modules at bootstrap.
package module

import (
	phttp "paychat/internal/platform/net/http"
)

// Module is what api.Mount expects from each service (payroll, chat, meta).
// Kept as a sibling of modkit so a module can export its own ports type
// without an import cycle.
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)
	Ports() any
}
