package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jems1213/nexus/internal/config"
	"github.com/jems1213/nexus/internal/contact"
	"github.com/jems1213/nexus/internal/db"
	"github.com/jems1213/nexus/internal/handlers"
	"github.com/jems1213/nexus/internal/identity"
	"github.com/jems1213/nexus/internal/middleware"
	"github.com/jems1213/nexus/internal/store/postgres"
	"github.com/jems1213/nexus/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(dbConn); err != nil {
		slog.Error("db migrate", "error", err)
		os.Exit(1)
	}

	if cfg.GoogleClientID == "" {
		slog.Warn("GOOGLE_CLIENT_ID not set; google login will reject all tokens")
	}

	identitySvc := identity.NewService(
		postgres.NewUserStore(dbConn),
		identity.NewGoogleVerifier(cfg.GoogleClientID),
		slog.Default(),
	)
	contactSvc := contact.NewService(postgres.NewContactStore(dbConn), slog.Default())

	h := handlers.NewHandler(identitySvc, contactSvc, dbConn)
	router := handlers.NewRouter(h, middleware.NewAPIKeyAuthorizer(cfg.AdminAPIKey), handlers.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		Dev:         !cfg.Production(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
