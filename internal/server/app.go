// Package server wires and runs the Instabids authority: Postgres storage
// with migrations, the Redis-backed realtime hub and its Postgres change
// listener, and the gRPC endpoint. Run blocks until ctx is cancelled and
// then shuts everything down.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/buildinfo"
	"github.com/dmitrijs2005/instabids/internal/logging"
	"github.com/dmitrijs2005/instabids/internal/server/config"
	gs "github.com/dmitrijs2005/instabids/internal/server/grpc"
	"github.com/dmitrijs2005/instabids/internal/server/realtime"
	"github.com/dmitrijs2005/instabids/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/instabids/internal/server/services"
	"github.com/dmitrijs2005/instabids/internal/telemetry"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
)

const serviceName = "instabids-authority"

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	rdb       *redis.Client
	server    *gs.GRPCServer
	listener  *realtime.Listener
	telemetry telemetry.ShutdownFunc
}

// NewApp connects to Postgres and Redis, applies migrations and builds the
// services. Resources opened before a failure are released.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (app *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var closers []func() error
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
		}
	}()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, buildinfo.Version, cfg.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}
	closers = append(closers, func() error { return shutdownTracing(context.Background()) })

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	closers = append(closers, db.Close)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	closers = append(closers, rdb.Close)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	hub := realtime.NewHub(rdb, logger.With("module", "realtime"))

	srv := gs.NewGRPCServer(cfg.EndpointAddrGRPC, logger, gs.Deps{
		Auth:     services.NewAuthService(db, rm, cfg, logger.With("module", "auth")),
		Profiles: services.NewProfileService(db, rm),
		Storage:  services.NewStorageService(cfg),
		Hub:      hub,
	}, cfg.SecretKey, cfg.AnonKey)

	return &App{
		config:    cfg,
		logger:    logger,
		db:        db,
		rdb:       rdb,
		server:    srv,
		listener:  realtime.NewListener(cfg.DatabaseDSN, hub, logger.With("module", "change_listener")),
		telemetry: shutdownTracing,
	}, nil
}

// Run serves until ctx is cancelled or the gRPC server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var (
		wg      sync.WaitGroup
		serveErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "gRPC server failed", "error", err)
			serveErr = err
			cancelFunc()
		}
	}()
	go func() {
		defer wg.Done()
		_ = app.listener.Run(ctx)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(serveErr, app.close())
}

func (app *App) close() error {
	return errors.Join(
		app.rdb.Close(),
		app.db.Close(),
		app.telemetry(context.Background()),
	)
}
