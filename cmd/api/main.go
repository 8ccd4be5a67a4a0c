package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"studentsdemo/docs"
	"studentsdemo/internal/catalog"
	"studentsdemo/internal/config"
	"studentsdemo/internal/database"
	handlers "studentsdemo/internal/http/handler"
	"studentsdemo/internal/http/middleware"
	"studentsdemo/internal/logger"
	"studentsdemo/internal/otel"
	"studentsdemo/internal/repository/mongodb"
	"studentsdemo/internal/service"
	"studentsdemo/internal/storage"
)

// @title Students Document Store Demo API
// @version 1.0
// @description Runs a fixed catalog of MongoDB operations and manages student records.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, config.Describe("Environment variables:"))
		os.Exit(1)
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	// One client for the whole process; the driver pools connections internally.
	mgr := database.NewManager(cfg.Mongo.ConnectTimeout())
	db, err := mgr.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Name)
	if err != nil {
		log.Error().Err(err).Str("uri", database.RedactURI(cfg.Mongo.URI)).Msg("failed to connect to MongoDB")
		database.WriteTroubleshooting(os.Stderr, cfg.Mongo.URI)
		os.Exit(1)
	}

	studentRepo := mongodb.NewStudentMongo(db, cfg.Mongo.Collection)
	if err := studentRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("text index not created; textSearch will fail until it exists")
	}

	runner := catalog.New(db, cfg.Mongo.Collection, log)
	studentSvc := service.NewStudentService(studentRepo, cfg.Mongo.Name, cfg.Mongo.Collection)

	// Object storage is optional; without it the export endpoint answers 503.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		s, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
		objStore = s
	}
	exportSvc := service.NewExportService(objStore, studentRepo, cfg.MinIO.URLExpiry())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		AppName:               "studentsdemo",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())
	// RequestID must run before Logger so request lines carry request_id
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

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

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Runner:    runner,
		Students:  studentSvc,
		Exports:   exportSvc,
		Health:    mgr,
		Metrics:   reg,
		StaticDir: cfg.StaticDir,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info().
			Str("addr", addr).
			Str("url", "http://"+cfg.AppHost).
			Str("database", cfg.Mongo.Name).
			Str("mongo_uri", database.RedactURI(cfg.Mongo.URI)).
			Bool("exports_enabled", objStore != nil).
			Msg("server listening")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(closeCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown")
	}
	if err := mgr.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("closing MongoDB connection")
	}
}
