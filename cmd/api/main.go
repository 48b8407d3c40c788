// @title           Kanban Board API
// @version         1.0
// @description     Kanban boards with tasks, image attachments and an assignment workflow

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name kanban_session

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "kanban-board-api/docs" // Swagger docs import

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/imageproc"
	"kanban-board-api/internal/job"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/router"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Kanban Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	if cfg.Session.Secret == "" {
		// Validate rejects this in release mode; debug sessions do not survive restarts
		cfg.Session.Secret = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
		logger.Warn("No session secret configured, using a random one")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Initialize database
	db, err := database.New(database.ConfigFrom(cfg.Database))
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	database.StartDBStatsCollector(ctx, db, m, 15*time.Second)

	// Session revocations live in redis when configured
	var revocations session.RevocationStore
	if cfg.Redis.Enabled() {
		rdb, err := database.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis unavailable, revoked sessions are kept in memory", zap.Error(err))
			revocations = session.NewMemoryRevocationStore()
		} else {
			defer rdb.Close()
			revocations = session.NewRedisRevocationStore(rdb)
		}
	} else {
		revocations = session.NewMemoryRevocationStore()
	}

	sessions, err := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, revocations)
	if err != nil {
		logger.Fatal("Failed to initialize sessions", zap.Error(err))
	}

	// Initialize image storage
	store, err := client.NewFileStore(cfg, m)
	if err != nil {
		logger.Fatal("Failed to initialize file storage", zap.Error(err))
	}
	logger.Info("File storage initialized", zap.String("backend", cfg.Storage.Backend))

	routerCfg := router.Config{
		DB:             db,
		Logger:         logger,
		Metrics:        m,
		Store:          store,
		Sessions:       sessions,
		Pipeline:       imageproc.Default(cfg.Image.MaxSidePx, cfg.Image.JPEGQuality).WithMaxPixels(cfg.Image.MaxPixels),
		Images:         service.ImageOptions{MaxSizeBytes: cfg.Image.MaxSizeBytes(), MaxSizeMB: cfg.Image.MaxSizeMB},
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		CookieName:     cfg.Session.CookieName,
		CookieSecure:   cfg.Session.Secure,
	}
	if cfg.Storage.Backend == "local" {
		routerCfg.MediaRoot = cfg.Storage.MediaRoot
		routerCfg.MediaURL = cfg.Storage.BaseURL
	}
	r := router.Setup(routerCfg)

	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	// Orphaned image cleanup
	if cfg.Cleanup.Enabled {
		scheduler := cron.New()
		cleanup := job.NewOrphanCleanupJob(repository.NewTaskRepository(db), store, logger)
		if _, err := cleanup.Schedule(scheduler, cfg.Cleanup.Schedule); err != nil {
			logger.Fatal("Invalid cleanup schedule", zap.String("schedule", cfg.Cleanup.Schedule), zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Orphan image cleanup scheduled", zap.String("schedule", cfg.Cleanup.Schedule))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Kanban Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
