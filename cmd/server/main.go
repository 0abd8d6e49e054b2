package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/inamate/core2d/internal/asset"
	"github.com/inamate/core2d/internal/auth"
	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/export"
	mw "github.com/inamate/core2d/internal/middleware"
	"github.com/inamate/core2d/internal/session"
	"github.com/inamate/core2d/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The journal is optional: without a database, sessions are not recorded
	var (
		recorder session.Recorder
		journal  session.Journal
	)
	if cfg.DatabaseURL != "" {
		pool, err := store.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		j := store.NewJournal(pool, 0)
		if err := j.Migrate(ctx); err != nil {
			slog.Error("migrate journal", "error", err)
			os.Exit(1)
		}
		go j.Run(ctx)
		defer func() { <-j.Done() }()
		recorder, journal = j, j
	} else {
		slog.Warn("DATABASE_URL not set, session journal disabled")
	}

	authService := auth.NewService(cfg.JWTSecret)
	if !authService.Enabled() {
		slog.Warn("JWT_SECRET not set, all clients join anonymously")
	}
	authHandler := auth.NewHandler(authService)

	hub := session.NewHub(cfg.Editor, recorder)
	go hub.Run(ctx)

	origins := mw.SplitOrigins(cfg.AllowedOrigins)
	assetHandler := asset.NewHandler(cfg.AssetDir)
	sessionHandler := session.NewHandler(hub, authService, mw.OriginPatterns(origins), journal)
	exportHandler := export.NewHandler(hub, assetHandler)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(origins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Auth routes
	r.HandleFunc("/auth/token", authHandler.Token).Methods("POST", "OPTIONS")
	r.Handle("/auth/me", authService.AuthMiddleware(http.HandlerFunc(authHandler.Me))).Methods("GET", "OPTIONS")

	// Assets referenced by image shapes
	r.HandleFunc("/assets/upload", assetHandler.Upload).Methods("POST", "OPTIONS")
	r.HandleFunc("/assets/{key}", assetHandler.Delete).Methods("DELETE", "OPTIONS")
	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	// Sessions
	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions", sessionHandler.List).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}/journal", sessionHandler.History).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}/export.{format}", exportHandler.Export).Methods("GET")

	// WebSocket endpoint
	r.HandleFunc("/ws/session/{sessionId}", sessionHandler.ServeWS)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Stop the hub first so clients are closed before the listener
		cancel()
		<-hub.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
