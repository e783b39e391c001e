package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmanagement/config"
	_ "eventmanagement/docs"
	"eventmanagement/internal/adapters/auth"
	"eventmanagement/internal/adapters/cache"
	"eventmanagement/internal/adapters/email"
	"eventmanagement/internal/clock"
	deliveryhttp "eventmanagement/internal/delivery/http"
	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/domain"
	"eventmanagement/internal/metrics"
	"eventmanagement/internal/repository/postgres"
	"eventmanagement/internal/services"
	"eventmanagement/migrations"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title Event Management API
// @version 1.0
// @description Events and their scheduled dates for tenant accounts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}
	logger.Info("database ready")

	healthChecks := []controllers.HealthCheck{{Name: "postgres", Check: db.PingContext}}

	var statsCache domain.EventStatsCache = cache.NoopStatsCache{}
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		if err := cache.Ping(ctx, client); err != nil {
			logger.Warn("stats cache disabled", "err", err)
		} else {
			statsCache = cache.NewStatsCache(client, cfg.StatsCacheTTL)
			healthChecks = append(healthChecks, controllers.HealthCheck{Name: "redis", Check: redisCheck(client)})
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	var (
		m              *metrics.Metrics
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		m = metrics.New()
		metricsHandler = promhttp.Handler()
	}

	eventRepo := postgres.NewEventRepository(db)
	eventService := services.NewEventService(
		eventRepo,
		emailService,
		statsCache,
		clock.NewSystem(cfg.Location()),
		m,
		logger,
		cfg.StatsLocale,
		cfg.ContextTimeout,
	)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Events:         controllers.NewEventController(logger, eventService),
		Tags:           controllers.NewTagController(logger, services.NewTagService(postgres.NewTagRepository(db), cfg.ContextTimeout)),
		Health:         controllers.NewHealthController(logger, healthChecks...),
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		Logger:         logger,
		Metrics:        m,
		MetricsHandler: metricsHandler,
		AllowedOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func redisCheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return cache.Ping(ctx, client)
	}
}
