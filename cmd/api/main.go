package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/audit"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/config"
	dbpkg "github.com/SumitSharma2000/Car-Wash-APP/internal/db"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/infra/notify"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/middleware"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/routes"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal("Database init failed", zap.Error(err))
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			logger.Warn("Database close failed", zap.Error(err))
		}
	}()

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	notifier, redisClient := buildNotifier(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	go authLimiter.RunSweeper(ctx, 10*time.Minute)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Notifier:    notifier,
		Audit:       auditDispatcher,
		AuthLimiter: authLimiter,
	}); err != nil {
		logger.Fatal("Route setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// buildNotifier uses the redis outbox plus an SMTP worker when REDIS_ADDR and
// SMTP_HOST are set and falls back to logging otherwise.
func buildNotifier(ctx context.Context, cfg *config.Config) (account.Notifier, *redis.Client) {
	if !cfg.MailDeliveryEnabled() {
		logger.Warn("REDIS_ADDR or SMTP_HOST not set, password reset mails will only be logged")
		return notify.NewLogNotifier(), nil
	}

	sender, err := notify.NewSMTPSender(cfg.SMTP)
	if err != nil {
		logger.Fatal("SMTP sender init failed", zap.Error(err))
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable at startup",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
	}

	worker := notify.NewMailWorker(
		client,
		sender,
		cfg.ResetMailQueue,
		cfg.ResetLinkBaseURL,
	)
	go worker.Run(ctx)

	return notify.NewRedisOutbox(client, cfg.ResetMailQueue), client
}
