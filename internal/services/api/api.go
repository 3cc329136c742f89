// Package api composes the HTTP API for the application
package api

import (
	"paychat/internal/platform/config"
	"paychat/internal/platform/logger"
	phttp "paychat/internal/platform/net/http"
	"paychat/internal/platform/store"

	"paychat/internal/modkit"
	"paychat/internal/modkit/httpkit"
	"paychat/internal/modkit/module"
	"paychat/internal/modkit/swaggerkit"

	metamod "paychat/internal/services/api/meta/module"
	chatmod "paychat/internal/services/chat/module"
	paymod "paychat/internal/services/payroll/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	// payroll owns the ledger; the chat engine consumes its service in process
	payroll := paymod.New(deps)
	chat := chatmod.New(deps, payroll.Service())

	mods := []module.Module{
		metamod.New(deps),
		payroll,
		chat,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
