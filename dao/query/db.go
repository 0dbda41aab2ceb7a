package query

import (
	"context"
	"fmt"
	"time"

	"metaapi/config"
	"metaapi/logutils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to postgres through a pgx pool and wraps it with gorm.
// Each request checks a connection out of the pool for the duration of its
// statements. The returned func releases the sql.DB handle and then the pool;
// callers must invoke it once they are done with db.
func Open(ctx context.Context, cfg *config.Postgres) (db *gorm.DB, closeFn func(), err error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres %s:%s/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres %s:%s/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	closeFn = func() {
		_ = sqlDB.Close()
		pool.Close()
	}
	db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logutils.GormLogger(),
	})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	logutils.Log.WithFields(logutils.Fields{
		"host":   cfg.Host,
		"dbname": cfg.DBName,
	}).Info("Postgres init success!")
	return db, closeFn, nil
}
