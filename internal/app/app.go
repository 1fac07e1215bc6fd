package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/config"
	"github.com/MrSnakeDoc/marquee/internal/httpserver"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	"github.com/MrSnakeDoc/marquee/internal/query"
	"github.com/MrSnakeDoc/marquee/internal/redis"
	"github.com/MrSnakeDoc/marquee/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
	"github.com/MrSnakeDoc/marquee/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Catalog
	reloader    *scheduler.CatalogReloader
	gc          *scheduler.OrphanCollector
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Initialize the in-memory catalog and the query pipeline over it
	cat := catalog.New()
	engine := query.New(cat)

	// Initialize Redis store
	store := redisstore.NewStore(redisClient)

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	// Initialize catalog reloader
	reloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		cat,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Initialize orphan collector for user ledgers
	gc := scheduler.NewOrphanCollector(
		store,
		cat,
		loggerClient,
		cfg.GCInterval,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Catalog:       cat,
		Engine:        engine,
		RedisClient:   redisClient,
		SimilarLimit:  cfg.SimilarLimit,
		SeedDemoData:  cfg.SeedDemoData,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     cat,
		reloader:    reloader,
		gc:          gc,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Marquee v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Marquee %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start catalog reloader (loads the catalog and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start orphan collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start orphan collector: %w", err)
	}
	a.logger.Info("orphan collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop reloader
	a.reloader.Stop()

	// Stop orphan collector
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Marquee stopped cleanly")
	return nil
}
