// @title         Paychat API
// @version       0.1.0
// @description   Natural-language payroll queries with cited evidence

package main

import (
	"context"

	"paychat/internal/platform/config"
	"paychat/internal/platform/logger"
	phttp "paychat/internal/platform/net/http"
	"paychat/internal/platform/store"

	"paychat/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	// postgres is only opened when the ledger source asks for it; the CSV
	// ledger runs storeless
	var st *store.Store
	if root.Prefix("PAYROLL_").MayString("SOURCE", "csv") == "pg" {
		pgCfg := root.Prefix("SERVICE_PGSQL_")
		opened, err := store.Open(
			context.Background(),
			store.Config{
				AppName: "paychat-api",
				PG: store.PGConfig{
					Enabled:     true,
					URL:         pgCfg.MustString("DBURL"),
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", true),
				},
			},
			store.WithLogger(*l),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		st = opened
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
