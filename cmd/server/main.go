package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/zametka/internal/server/handlers"
	"github.com/iudanet/zametka/internal/server/middleware"
	"github.com/iudanet/zametka/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
	shutdownTimeout = 10 * time.Second

	// Лимит запросов на auth эндпоинтах против перебора паролей
	authRateLimit  = 10
	authRateWindow = time.Minute
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "zametka-server.db", "Path to SQLite database")
	baseURL := flag.String("base-url", "http://localhost:8080", "Public base URL for share links")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	jwtSecret := os.Getenv("ZAMETKA_JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("ZAMETKA_JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(jwtSecret),
		AccessTokenTTL:  accessTokenTTL,
		RefreshTokenTTL: refreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	notesHandler := handlers.NewNotesHandler(logger, store, store, store, store, *baseURL)
	shareHandler := handlers.NewShareHandler(logger, store, store, store, store, *baseURL)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMw := middleware.AuthMiddleware(logger, jwtConfig)
	authRateMw := middleware.RateLimitMiddleware(authRateLimit, authRateWindow, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Health)

	// Аутентификация: без JWT, с rate limit против перебора
	mux.Handle("POST /api/v1/auth/register", authRateMw(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", authRateMw(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/v1/auth/refresh", authRateMw(http.HandlerFunc(authHandler.Refresh)))
	mux.Handle("POST /api/v1/auth/logout", authMw(http.HandlerFunc(authHandler.Logout)))

	// Заметки: только с валидным access token
	mux.Handle("GET /api/v1/notes", authMw(http.HandlerFunc(notesHandler.List)))
	mux.Handle("POST /api/v1/notes", authMw(http.HandlerFunc(notesHandler.Create)))
	mux.Handle("GET /api/v1/notes/{id}", authMw(http.HandlerFunc(notesHandler.Get)))
	mux.Handle("PUT /api/v1/notes/{id}", authMw(http.HandlerFunc(notesHandler.Update)))
	mux.Handle("DELETE /api/v1/notes/{id}", authMw(http.HandlerFunc(notesHandler.Delete)))

	// Доступы и публичные ссылки
	mux.Handle("POST /api/v1/notes/{id}/share/user", authMw(http.HandlerFunc(shareHandler.ShareWithUser)))
	mux.Handle("POST /api/v1/notes/{id}/share/public", authMw(http.HandlerFunc(shareHandler.CreatePublicLink)))
	mux.Handle("DELETE /api/v1/public-links/{id}", authMw(http.HandlerFunc(shareHandler.RevokePublicLink)))

	// Публичное чтение: без авторизации
	mux.HandleFunc("GET /api/v1/public/notes/{token}", shareHandler.GetPublicNote)

	// Внешняя цепочка: recovery снаружи, логирование внутри
	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/healthz"})(mux),
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", *addr),
			slog.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

func printVersion() {
	fmt.Printf("Zametka Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
