// Package modkit wires service modules together: shared deps, build
// options, and the module surface api.Mount consumes.
package modkit

import (
	phttp "paychat/internal/platform/net/http"
)

// Module is the mountable unit (payroll, chat, meta). Kept tiny so
// modules only couple through ports.
type Module interface {
	// MountRoutes attaches the module's endpoints to the router seam
	MountRoutes(r phttp.Router)
	// Ports exposes the module's port set for cross wiring
	Ports() any
	// Name identifies the module
	Name() string
}

// Builder is the conventional module constructor shape,
// New(deps Deps, opts ...Option) Module.
type Builder func(Deps, ...Option) Module
