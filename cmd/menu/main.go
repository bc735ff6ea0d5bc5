package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-menu-service/config"
	"github.com/fekuna/omnipos-menu-service/internal/menu"
	menuRepoPkg "github.com/fekuna/omnipos-menu-service/internal/menu/repository"
	menuUCPkg "github.com/fekuna/omnipos-menu-service/internal/menu/usecase"
	"github.com/fekuna/omnipos-menu-service/internal/notify"
	"github.com/fekuna/omnipos-menu-service/internal/store"
	memoryStore "github.com/fekuna/omnipos-menu-service/internal/store/memory"
	pgStore "github.com/fekuna/omnipos-menu-service/internal/store/postgres"
	"github.com/fekuna/omnipos-menu-service/pkg/cache"
	"github.com/fekuna/omnipos-menu-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to the document store
	var docStore store.Store
	switch cfg.Catalog.Store {
	case "memory":
		docStore = memoryStore.New()
		appLogger.Info("Using in-memory document store")
	default:
		db, err := pgStore.Connect(&pgStore.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DBName:   cfg.Postgres.DBName,
			SSLMode:  cfg.Postgres.SSLMode,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		docStore = pgStore.New(db)
		appLogger.Info("Connected to PostgreSQL document store", zap.String("db_name", cfg.Postgres.DBName))
	}

	// 4. Initialize Redis (optional; caching is skipped when unavailable)
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, continuing without cache", zap.Error(err))
		} else {
			redisClient = client
			defer redisClient.Close()
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5. Initialize repository, notifier and workflow
	menuRepo := menuRepoPkg.NewStoreRepository(docStore)
	notifier := notify.NewNotifier(8)
	menuUC := menuUCPkg.NewMenuWorkflow(menuRepo, redisClient, notifier, appLogger)

	app := &app{
		cfg:      cfg,
		logger:   appLogger,
		repo:     menuRepo,
		uc:       menuUC,
		notifier: notifier,
	}

	if err := newRootCommand(app).Execute(); err != nil {
		printWorkflowError(err)
		os.Exit(1)
	}
}

// printWorkflowError renders per-field error maps the way the admin form
// shows them, and everything else as a single line.
func printWorkflowError(err error) {
	var verr *menu.ValidationError
	var uerr *menu.UniquenessViolation

	switch {
	case errors.As(err, &verr):
		for field, msg := range verr.Fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
	case errors.As(err, &uerr):
		for field, msg := range uerr.FieldErrors() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}
