package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	academyHandler "academy/internal/academy/handler"
	"academy/internal/academy/metrics"
	"academy/internal/academy/service"
	"academy/internal/academy/store"
	jwttoken "academy/internal/jwt_token"
	"academy/internal/ledger"
	"academy/internal/platform/config"
	"academy/internal/platform/database"
	"academy/internal/platform/health"
	"academy/internal/platform/httpserver"
	"academy/internal/platform/logger"
	"academy/internal/token"
	httptransport "academy/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Transition logic lives in internal/academy/service.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing academy relay",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	healthHandler := health.New(cfg.Environment)

	// Accounts live in Postgres when a URL is configured, in memory
	// otherwise. The in-memory store is for development and tests only.
	var accounts ledger.Store
	if cfg.DatabaseURL != "" {
		dbCfg := database.DefaultConfig()
		dbCfg.URL = cfg.DatabaseURL
		pool, err := database.New(dbCfg)
		if err != nil {
			log.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
		accounts = ledger.NewPostgres(pool.DB())
		log.Info("using postgres account store")
	} else {
		accounts = ledger.NewMemoryStore()
		log.Warn("no DATABASE_URL configured, using in-memory account store")
	}

	xp := token.NewLedger(ledger.Derive(ledger.KindConfig, []byte("xp-mint")), ledger.ConfigAddress())
	assets := token.NewAssetRegistry(ledger.ConfigAddress())

	engine := service.New(store.New(accounts), xp, assets,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	)

	jwtService := jwttoken.New(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)
	handler := academyHandler.New(engine, log)
	router := httptransport.NewRouter(handler, healthHandler, jwtService, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
