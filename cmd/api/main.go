package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"friendgrid/docs"
	"friendgrid/internal/config"
	"friendgrid/internal/credential"
	"friendgrid/internal/database"
	handlers "friendgrid/internal/http/handler"
	"friendgrid/internal/http/middleware"
	"friendgrid/internal/logger"
	"friendgrid/internal/node"
	"friendgrid/internal/otel"
	"friendgrid/internal/repository"
	"friendgrid/internal/repository/postgres"
	"friendgrid/internal/requester"
	"friendgrid/internal/service"
	"friendgrid/internal/storage"
)

// @title FriendGrid API
// @version 1.0
// @description Local harness for the FriendGrid contact upsert node.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.SendGrid.APIKey == "" {
		log.Warn("SENDGRID_API_KEY is not set; node invocations will fail to authenticate")
	}
	creds := credential.NewStatic(map[string]string{node.CredentialName: cfg.SendGrid.APIKey})

	req, err := requester.New(creds, requester.Config{
		Timeout:    time.Duration(cfg.SendGrid.HTTPTimeoutSec) * time.Second,
		Registerer: reg,
		Logger:     log,
	})
	if err != nil {
		log.Fatal("failed to initialize requester", zap.Error(err))
	}
	defer req.Close()

	var (
		db   *sql.DB
		repo repository.ExecutionRepository
		objs storage.Storage
	)
	if cfg.HistoryEnabled() {
		db, err = database.OpenHistory(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal("failed to open history database", zap.Error(err))
		}
		defer db.Close()

		objs, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		repo = postgres.NewExecutionPostgres(db)
		log.Info("execution history enabled", zap.String("bucket", cfg.MinIO.Bucket))
	} else {
		log.Info("execution history disabled")
	}

	fg := node.NewFriendGrid(node.WithBaseURL(cfg.SendGrid.BaseURL))
	svc := service.NewExecutionService(fg, req, objs, repo, log)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to initialize metrics middleware", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:       db,
		Node:     fg,
		Service:  svc,
		Gatherer: reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := cfg.ListenAddr()
	log.Info("listening", zap.String("addr", addr), zap.String("node", node.Name))
	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
