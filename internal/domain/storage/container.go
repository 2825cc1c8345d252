package storage

import (
	"context"
	"fmt"

	"yvrfountains/internal/domain/admins"
	"yvrfountains/internal/domain/fountains"
	"yvrfountains/internal/domain/reviews"
	"yvrfountains/internal/domain/sources"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Container bundles the repositories over one pool. Review moderation is a
// single conditional UPDATE and needs no transaction; the only
// multi-statement unit of work is an import batch.
type Container struct {
	pool      *pgxpool.Pool
	Fountains fountains.Store
	Reviews   reviews.Store
	Admins    admins.Store
	Sources   sources.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:      db,
		Fountains: fountains.NewRepository(db),
		Reviews:   reviews.NewRepository(db),
		Admins:    admins.NewRepository(db),
		Sources:   sources.NewRepository(db),
	}
}

// ImportTx is a temporary, tx-scoped set of repos for one import batch, so
// the fountain upserts and the dataset bookkeeping commit or roll back
// together.
type ImportTx struct {
	Fountains fountains.Store
	Sources   sources.Store
}

func (c *Container) WithImportTx(ctx context.Context, fn func(s *ImportTx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &ImportTx{
		Fountains: fountains.NewRepository(tx),
		Sources:   sources.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
