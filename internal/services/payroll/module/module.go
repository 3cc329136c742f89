// Package module wires the payroll ledger into the API using modkit
package module

import (
	"net/http"

	modkit "paychat/internal/modkit"
	"paychat/internal/modkit/httpkit"
	str "paychat/internal/platform/strings"
	payhttp "paychat/internal/services/payroll/http"
	payrepo "paychat/internal/services/payroll/repo"
	paysvc "paychat/internal/services/payroll/service"
)

// Module implements the payroll module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc paysvc.Service
}

// New constructs the payroll module. The record source is selected through
// PAYROLL_SOURCE: "pg" binds the repo to the shared postgres seam, anything
// else loads the CSV ledger from PAYROLL_CSV
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("payroll"), modkit.WithPrefix("/payroll")}, opts...)...)

	cfg := deps.Cfg.Prefix("PAYROLL_")
	var r payrepo.Repo
	switch cfg.MayString("SOURCE", "csv") {
	case "pg":
		if deps.PG == nil {
			panic("payroll: PAYROLL_SOURCE=pg requires a postgres store")
		}
		r = payrepo.NewPG().Bind(deps.PG)
	default:
		mem, err := payrepo.OpenCSV(cfg.MayString("CSV", "data/payroll.csv"))
		if err != nil {
			panic(err)
		}
		r = mem
	}
	svc := paysvc.New(r)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = paysvc.Service(svc)

	external := b.Register
	m.register = func(r httpkit.Router) {
		payhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service exposes the accessor for in-process consumers (the chat engine)
func (m *Module) Service() paysvc.Service { return m.svc }

// MountRoutes mounts the module routes on the given router
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
