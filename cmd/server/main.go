package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planet-builder/internal/auth"
	"planet-builder/internal/classification"
	"planet-builder/internal/designer"
	"planet-builder/internal/middleware"
	"planet-builder/internal/planet"
	"planet-builder/internal/server"
	"planet-builder/internal/shared/config"
	"planet-builder/internal/shared/database"
	"planet-builder/internal/shared/logger"
	"planet-builder/internal/shared/redis"
	"planet-builder/internal/shared/telemetry"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting Planet Builder server",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment)

	shutdownTelemetry, err := telemetry.Setup(cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, continuing without assessment cache", "error", err)
		redisClient = nil
	}
	defer redisClient.Close()

	var cache planet.Cache
	if redisClient != nil {
		cache = planet.NewRedisCache(redisClient.Client, cfg.Redis.CacheTTL)
	}

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	designerService := designer.NewService(designer.NewRepository(db, slog.Default()), slog.Default())
	authService := auth.NewService(auth.NewRepository(db, slog.Default()), designerService, tokens, slog.Default())
	planetService := planet.NewService(classification.New(), cache, planet.NewRepository(db, slog.Default()), slog.Default())
	states := auth.NewStateManager()

	mux := server.NewRoutes(server.Dependencies{
		DB:              db,
		Cache:           redisClient,
		PlanetService:   planetService,
		DesignerService: designerService,
		AuthService:     authService,
		Tokens:          tokens,
		States:          states,
		OAuthConfig:     auth.InitOAuth(cfg),
		FrontendURL:     cfg.Frontend.URL,
	}).Setup()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	cors := middleware.NewCORS(cfg.Frontend)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.Tracing(cors.Middleware(rateLimiter.Middleware(mux))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("HTTP server listening", "addr", httpServer.Addr, "url", cfg.Server.URL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		states.Run(gctx)
		return nil
	})

	g.Go(func() error {
		rateLimiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			return fmt.Errorf("failed to flush telemetry: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}
