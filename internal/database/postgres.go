// Package database owns the optional PostgreSQL pool behind the property-record store.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stwalsh4118/propcalc/api/internal/config"
)

// Pool timings applied to every connection pool.
const (
	ConnectTimeout    = 5 * time.Second
	MaxConnIdleTime   = 30 * time.Second
	MaxConnLifetime   = time.Hour
	HealthCheckPeriod = time.Minute
)

// Database wraps the pgx connection pool. Applied lists the schema files
// applied by the last Migrate.
type Database struct {
	Pool    *pgxpool.Pool
	Applied []string
}

// DSN builds a postgres URL from cfg, escaping the credentials.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// PoolConfig parses cfg into a pgxpool configuration with the package timings.
func PoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = int32(cfg.PoolMin)
	poolConfig.MaxConns = int32(cfg.PoolMax)
	poolConfig.ConnConfig.ConnectTimeout = ConnectTimeout
	poolConfig.MaxConnIdleTime = MaxConnIdleTime
	poolConfig.MaxConnLifetime = MaxConnLifetime
	poolConfig.HealthCheckPeriod = HealthCheckPeriod

	return poolConfig, nil
}

// NewPostgresPool opens a pool and verifies it with a ping.
func NewPostgresPool(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{Pool: pool}, nil
}

// Open returns nil, nil when the store is disabled. Otherwise it connects and
// applies the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	db, err := NewPostgresPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Ping checks if the database connection is alive.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close closes the pool, waiting for acquired connections to be released.
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Stats returns pool statistics, or nil without a pool.
func (db *Database) Stats() *pgxpool.Stat {
	if db.Pool == nil {
		return nil
	}
	return db.Pool.Stat()
}
