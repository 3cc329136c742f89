// Package module wires the chat workflow into the API using modkit
package module

import (
	"net/http"
	"time"

	"paychat/internal/adapters/serper"
	"paychat/internal/core/period"
	"paychat/internal/core/roster"
	modkit "paychat/internal/modkit"
	"paychat/internal/modkit/httpkit"
	str "paychat/internal/platform/strings"
	"paychat/internal/services/chat/guardrails"
	chathttp "paychat/internal/services/chat/http"
	chatsvc "paychat/internal/services/chat/service"
	paysvc "paychat/internal/services/payroll/service"
)

// Module implements the chat module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc chatsvc.Service
}

// New constructs the chat module over the payroll accessor.
// CHAT_HISTORY bounds per-conversation memory, PAYROLL_DEFAULT_YEAR anchors
// year-less period expressions, SERPER_API_KEY enables the Selic lookup
func New(deps modkit.Deps, payroll paysvc.Service, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("chat"), modkit.WithPrefix("/chat")}, opts...)...)

	if payroll == nil {
		panic("chat: requires the payroll service")
	}

	ros := roster.Default()
	periods := period.New(deps.Cfg.Prefix("PAYROLL_").MayInt("DEFAULT_YEAR", 2025))

	var web chatsvc.WebSearcher
	serperCfg := deps.Cfg.Prefix("SERPER_")
	if key := serperCfg.MayString("API_KEY", ""); key != "" {
		web = serper.NewClient(serper.Options{
			APIKey:  key,
			Timeout: serperCfg.MayDuration("TIMEOUT", 10*time.Second),
		})
	}

	engine := chatsvc.NewEngine(payroll, ros, periods, web)
	guard := guardrails.New(ros)
	memory := chatsvc.NewMemory(deps.Cfg.Prefix("CHAT_").MayInt("HISTORY", chatsvc.DefaultMaxHistory))
	svc := chatsvc.New(engine, guard, memory)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = chatsvc.Service(svc)

	external := b.Register
	m.register = func(r httpkit.Router) {
		chathttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service exposes the chat workflow for in-process consumers (the CLI)
func (m *Module) Service() chatsvc.Service { return m.svc }

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
