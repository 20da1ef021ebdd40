package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/itg-platform/docverse/internal/config"
	"github.com/itg-platform/docverse/internal/domain"
	"github.com/itg-platform/docverse/internal/gateway"
	"github.com/itg-platform/docverse/internal/httpserver"
	"github.com/itg-platform/docverse/internal/httpserver/deps"
	"github.com/itg-platform/docverse/internal/logger"
	"github.com/itg-platform/docverse/internal/redis"
	"github.com/itg-platform/docverse/internal/scheduler"
	"github.com/itg-platform/docverse/internal/store/memory"
	redisstore "github.com/itg-platform/docverse/internal/store/redis"
	"github.com/itg-platform/docverse/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *memory.Store
	reloader    *scheduler.FixturesReloader
	gc          *scheduler.GarbageCollector
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis mirror is optional: no address configured means the memory
	// store runs alone. A configured but unreachable Redis is fatal.
	var redisClient *goredis.Client
	var mirror *redisstore.Store
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
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
		redisClient = client
		mirror = redisstore.NewStore(client)
		loggerClient.Info("Redis mirror initialized")
	} else {
		loggerClient.Info("Redis not configured, running without mirror")
	}

	store := memory.NewStore()

	// Restore API-created posts from the mirror before the first seed
	if mirror != nil {
		syncer := scheduler.NewRedisSyncer(mirror, store, loggerClient)
		if err := syncer.Sync(context.Background()); err != nil {
			loggerClient.Warn("failed to warm store from redis on startup",
				logger.Error(err))
		}
	}

	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewFixturesReloader(
		cfg.SeedFile,
		store,
		mirror,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	gc := scheduler.NewGarbageCollector(
		store,
		mirror,
		loggerClient,
		cfg.GCInterval,
		cfg.GCThreshold,
	)

	resolver := domain.NewResolver(
		domain.DefaultNavigation(),
		cfg.BasePath,
		domain.Breadcrumb{Section: cfg.SiteSection, Page: cfg.SiteTitle},
	)

	gw := gateway.New(gateway.Options{
		Store:  store,
		Mirror: mirror,
		Logger: loggerClient,
		Delay:  gateway.NewRandomDelay(cfg.DelayMin, cfg.DelayMax),
	})

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		Gateway:       gw,
		Store:         store,
		Resolver:      resolver,
		RedisClient:   redisClient,
		SeedFile:      cfg.SeedFile,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		store:       store,
		reloader:    reloader,
		gc:          gc,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting Docverse API v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Docverse %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed content and start periodic reseeding
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start fixtures reloader: %w", err)
	}
	a.logger.Info("fixtures reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start garbage collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
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
			a.logger.Info("Redis closed cleanly")
		}
	}

	a.logger.Info("Docverse stopped cleanly")
	return nil
}
