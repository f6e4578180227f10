package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-tracker/config"
	_ "task-tracker/docs" // Swagger docs
	"task-tracker/internal/httpserver"
	"task-tracker/internal/middleware"
	"task-tracker/internal/task/repository"
	"task-tracker/internal/task/repository/memory"
	"task-tracker/internal/task/repository/mongodb"
	"task-tracker/internal/task/repository/postgre"
	"task-tracker/pkg/log"
	pkgMongo "task-tracker/pkg/mongo"
	pkgPostgres "task-tracker/pkg/postgres"
	pkgRedis "task-tracker/pkg/redis"
)

// @title       Task Tracker API
// @description Create, list, update and delete tasks, plus aggregate statistics over them.
// @version     1
// @host        localhost:4000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Task store
	taskRepo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open task store: ", err)
		return
	}
	defer closeStore()

	// 4. Rate limiter (optional)
	limiter, closeLimiter, err := openLimiter(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize rate limiter: ", err)
		return
	}
	defer closeLimiter()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Limiter:         limiter,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		TaskRepository:  taskRepo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openStore connects the configured task store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := pkgMongo.Disconnect(client); err != nil {
				logger.Warnf(context.Background(), "MongoDB disconnect: %v", err)
			}
		}

		db := client.Database(cfg.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			closeFn()
			return nil, nil, err
		}
		logger.Infof(ctx, "✅ MongoDB connected (database %s)", cfg.Mongo.Database)
		return mongodb.New(db, logger), closeFn, nil

	case config.StoragePostgres:
		pool, err := pkgPostgres.Connect(ctx, pkgPostgres.Config{
			DSN:      cfg.Postgres.DSN,
			MaxConns: int32(cfg.Postgres.MaxConns),
		})
		if err != nil {
			return nil, nil, err
		}
		if err := postgre.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info(ctx, "✅ PostgreSQL connected")
		return postgre.New(pool, logger), pool.Close, nil

	default:
		logger.Warn(ctx, "Using in-memory task store, data is lost on restart")
		return memory.New(logger), func() {}, nil
	}
}

// openLimiter prefers a Redis-backed limiter when redis.addr is set.
func openLimiter(ctx context.Context, cfg *config.Config, logger log.Logger) (middleware.Limiter, func(), error) {
	if !cfg.RateLimit.Enabled {
		return nil, func() {}, nil
	}

	if cfg.Redis.Addr == "" {
		logger.Infof(ctx, "Rate limit: in-process, %d req/min per client", cfg.RateLimit.RequestsPerMin)
		return middleware.NewLocalLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst), func() {}, nil
	}

	client, err := pkgRedis.Connect(ctx, pkgRedis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warnf(context.Background(), "Redis close: %v", err)
		}
	}

	window := time.Duration(cfg.RateLimit.RedisWindowSecs) * time.Second
	logger.Infof(ctx, "Rate limit: redis %s, %d req per %s per client", cfg.Redis.Addr, cfg.RateLimit.RequestsPerMin, window)
	return middleware.NewRedisLimiter(client, cfg.RateLimit.RequestsPerMin, window), closeFn, nil
}
