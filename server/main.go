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

	"duka/api/routes"
	"duka/internal/auth"
	"duka/internal/deliveries"
	"duka/internal/notifications"
	"duka/internal/shared/config"
	"duka/internal/shared/database"
	"duka/internal/shared/middleware"
	"duka/internal/shared/schema"
	"duka/pkg/hasura"
	"duka/pkg/logger"
	"duka/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	bootLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			bootLogger.Info("Production environment: using container environment variables")
		} else {
			bootLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		bootLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger := logger.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.IsProduction())
	logger.SetDefault(appLogger)

	if cfg.JWT.Secret == "" {
		appLogger.Error("AUTHJWT_SECRET_KEY is not set")
		os.Exit(1)
	}

	db, err := database.InitDB(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	graphql := hasura.NewClient(hasura.Config{
		Endpoint:    cfg.Hasura.EndpointURL,
		AdminSecret: cfg.Hasura.AdminSecret,
		Timeout:     cfg.Hasura.Timeout,
	}).OnCall(func(ctx context.Context, query string, duration time.Duration, err error) {
		appLogger.LogGraphQLCall(ctx, schema.OperationName(query), duration, err)
	})

	deps := routes.Dependencies{
		Config:  cfg,
		DB:      db,
		GraphQL: graphql,
		Logger:  appLogger,
	}

	if cfg.JWT.DenylistEnabled && db.Redis != nil {
		deps.Denylist = auth.NewRedisDenylist(db.Redis, cfg.JWT.DenylistPrefix)
		appLogger.Info("Token denylist enabled", slog.Any("checks", cfg.JWT.DenylistChecks))
	}

	if db.PostgreSQL != nil {
		deps.Deliveries = deliveries.NewService(deliveries.NewRepository(db.PostgreSQL), appLogger)
		appLogger.Info("Webhook delivery log enabled")
	}

	if cfg.Kafka.Enabled {
		producerConfig := notifications.DefaultKafkaProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.Topic = cfg.Kafka.TicketTopic
		producerConfig.RetryMax = cfg.Kafka.RetryMax
		producerConfig.Timeout = cfg.Kafka.Timeout

		producer, err := notifications.NewKafkaProducer(producerConfig, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
			appLogger.Info("Continuing without ticket notifications")
		} else {
			deps.Publisher = producer
			appLogger.Info("Ticket notifications enabled", slog.String("topic", producerConfig.Topic))
			defer func() {
				if err := producer.Close(); err != nil {
					appLogger.Error("Error closing Kafka producer", slog.Any("error", err))
				}
			}()
		}
	}

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(db.Redis, &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			WebhookRequests: cfg.RateLimit.WebhookRequests,
			TicketRequests:  cfg.RateLimit.TicketRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        setupRouter(deps, rateLimiter),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("hasura", cfg.Hasura.EndpointURL),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("denylist", deps.Denylist != nil),
			slog.Bool("delivery_log", deps.Deliveries != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(deps routes.Dependencies, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		gin.Recovery(),
		routes.CORS(deps.Config.CORS),
	)

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter, deps.Logger))
	}

	routes.NewRouter(deps).SetupRoutes(engine)
	return engine
}
