// Package module mounts the meta endpoints (health, readiness, version).
package module

import (
	"net/http"
	"time"

	modkit "paychat/internal/modkit"
	"paychat/internal/modkit/httpkit"
	str "paychat/internal/platform/strings"

	metahttp "paychat/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New builds the meta module. StartedAt is pinned here so uptime counts
// from process wiring, not the first request.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "paychat-api",
			StartedAt:   m.startedAt,
			PG:          pgOrNil(deps),
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// pgOrNil keeps a typed nil TxRunner from reaching the handlers as a
// non-nil interface
func pgOrNil(deps modkit.Deps) any {
	if deps.PG == nil {
		return nil
	}
	return deps.PG
}

// MountRoutes attaches the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix reports the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares reports the module middleware chain
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements modkit.Module; meta publishes nothing
func (m *Module) Ports() any { return nil }
