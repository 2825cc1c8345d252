package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx shared by *pgxpool.Pool, *pgx.Conn and
// pgx.Tx. Repositories are written against it so the same code runs
// inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Config carries the pool settings read from the environment.
type Config struct {
	Addr        string
	MaxConns    int32
	MaxIdleTime string

	// AppName shows up in pg_stat_activity, which is how API and
	// importer connections are told apart.
	AppName string
}

// NewPool builds a pgx connection pool from cfg and pings it before
// handing it back.
func NewPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	pc.MaxConns = cfg.MaxConns

	idle, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		return nil, fmt.Errorf("parse max idle time: %w", err)
	}
	pc.MaxConnIdleTime = idle

	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}

	// Initialization, including the ping below, must finish inside this
	// window or the pool fails to start.
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
