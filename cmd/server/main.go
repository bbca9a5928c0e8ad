package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orrya/backend/internal/config"
	"github.com/orrya/backend/internal/handler"
	"github.com/orrya/backend/internal/logging"
	"github.com/orrya/backend/internal/ratelimit"
	"github.com/orrya/backend/internal/repository"
	"github.com/orrya/backend/internal/service"
	"github.com/orrya/backend/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	creds, err := auth.NewAdminCredentials(cfg.AdminUsername, cfg.AdminPasswordHash)
	if err != nil {
		logging.Fatal("invalid admin credentials", "error", err)
	}
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, time.Now)
	if err != nil {
		logging.Fatal("invalid token configuration", "error", err)
	}

	contactRepo := repository.NewPgContactRepository(pool)
	contactService := service.NewContactService(contactRepo)
	authService := service.NewAuthService(creds, tokens)

	limiter := newLimiter(ctx, cfg)

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.NewRouter(handler.RouterConfig{
			Contacts:          contactService,
			Auth:              authService,
			DB:                pool,
			Limiter:           limiter,
			FrontendURL:       cfg.FrontendURL,
			TrustedProxyCount: cfg.TrustedProxyCount,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

// newLimiter returns nil when rate limiting is disabled. A Redis limiter is
// used when REDIS_URL is set and reachable; otherwise counts are kept in
// process memory.
func newLimiter(ctx context.Context, cfg config.Config) ratelimit.Limiter {
	if cfg.RateLimitPerMinute == 0 {
		slog.Info("rate limiting disabled")
		return nil
	}
	if cfg.RedisURL != "" {
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err == nil {
			slog.Info("rate limiting backed by redis", "per_minute", cfg.RateLimitPerMinute)
			return ratelimit.NewRedisLimiter(rdb, cfg.RateLimitPerMinute)
		}
		slog.Warn("redis unavailable, using in-memory rate limiter", "error", err)
	}
	mem := ratelimit.NewMemoryLimiter(cfg.RateLimitPerMinute)
	go mem.Run(ctx, 5*time.Minute)
	slog.Info("rate limiting in memory", "per_minute", cfg.RateLimitPerMinute)
	return mem
}
