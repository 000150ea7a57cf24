package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval      = 5 * time.Second
	poolWaitWarnThreshold    = 50 * time.Millisecond
	catalogMigrationLogLabel = "catalog"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the catalog database; it is pinged, optionally migrated and monitored on start
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.AutoMigrate {
				if err := migrateCatalog(ctx, db, params.Logger); err != nil {
					return err
				}
			}

			go watchPool(monitorCtx, params.Logger, sqlDB.Stats, poolMonitorInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func migrateCatalog(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	start := time.Now()
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate catalog schema")
	}
	logger.Info("Schema migrated",
		slog.String("schema", catalogMigrationLogLabel),
		slog.Duration("took", time.Since(start)),
	)

	return nil
}

// watchPool logs connection pool waits seen since the previous tick
func watchPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait summarizes waits between two stats samples; waited is false when nothing queued
func poolWait(prev, cur sql.DBStats) (level slog.Level, attrs []slog.Attr, waited bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waitTime := cur.WaitDuration - prev.WaitDuration
	attrs = []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("wait_time", waitTime),
		slog.Duration("avg_wait", waitTime/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	}

	level = slog.LevelDebug
	if waitTime >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
