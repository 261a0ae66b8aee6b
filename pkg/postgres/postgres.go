package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgreDB struct {
	Pool     *pgxpool.Pool
	DBConfig *pgxpool.Config
}

type Config interface {
	GetDSN() string
}

// PoolConfig optionally supplies pool sizing on top of the DSN.
type PoolConfig interface {
	Config
	PoolLimits() (maxConns, minConns int32, maxConnLifetime, maxConnIdleTime time.Duration)
}

func New(ctx context.Context, config Config) (*PostgreDB, error) {
	dbConfig, err := pgxpool.ParseConfig(config.GetDSN())
	if err != nil {
		return nil, err
	}

	if pc, ok := config.(PoolConfig); ok {
		maxConns, minConns, lifetime, idle := pc.PoolLimits()
		dbConfig.MaxConns = maxConns
		dbConfig.MinConns = minConns
		dbConfig.MaxConnLifetime = lifetime
		dbConfig.MaxConnIdleTime = idle
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	// Ping the database
	if err = pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgreDB{
		Pool:     pool,
		DBConfig: dbConfig,
	}, nil
}

func (db *PostgreDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
