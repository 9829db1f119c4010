package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Pavement/internal/auth"
	"Pavement/internal/calc/report"
	"Pavement/internal/config"
	"Pavement/internal/log"
	"Pavement/internal/metrics"
	"Pavement/internal/repo"
	"Pavement/internal/server"
)

var wg sync.WaitGroup

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := log.Init(cfg.LogDebug); err != nil {
		log.Fatalf("%v", err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := repo.Open(dbCtx, cfg.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}
	defer db.Close()

	handler := server.NewHandler(server.Deps{
		Auth:      &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: repo.NewPostgresUserDB(db)},
		Metrics:   metrics.NewMetrics(),
		Reports:   report.NewWriter(),
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		StaticDir: cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infow("starting server", "addr", cfg.HTTPAddr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown error", "error", err)
	}
	wg.Wait()
	log.Info("server stopped")
}
