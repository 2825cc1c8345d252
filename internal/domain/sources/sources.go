// Package sources tracks where fountain records came from: the city and
// the open-data export they were imported from.
package sources

import (
	"context"
	"fmt"
	"time"

	"yvrfountains/internal/db"
)

const QueryTimeoutDuration = time.Second * 5

type City struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Dataset struct {
	ID           int64      `json:"id"`
	CityID       int64      `json:"city_id"`
	Name         string     `json:"name"`
	Format       string     `json:"format"`
	SourceURL    *string    `json:"source_url,omitempty"`
	LastLoadedAt *time.Time `json:"last_loaded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Store interface {
	GetOrCreateCity(ctx context.Context, name string) (*City, error)
	GetOrCreateDataset(ctx context.Context, cityID int64, name, format string, sourceURL *string) (*Dataset, error)
	MarkLoaded(ctx context.Context, datasetID int64) error
}

type Repository struct {
	db db.Querier
}

func NewRepository(db db.Querier) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetOrCreateCity(ctx context.Context, name string) (*City, error) {
	// The no-op DO UPDATE makes RETURNING yield the existing row too.
	const query = `
		INSERT INTO cities (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var city City
	if err := r.db.QueryRow(ctx, query, name).Scan(&city.ID, &city.Name, &city.CreatedAt); err != nil {
		return nil, fmt.Errorf("upserting city: %w", err)
	}
	return &city, nil
}

func (r *Repository) GetOrCreateDataset(ctx context.Context, cityID int64, name, format string, sourceURL *string) (*Dataset, error) {
	const query = `
		INSERT INTO source_datasets (city_id, name, format, source_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (city_id, name) DO UPDATE SET
			format = EXCLUDED.format,
			source_url = COALESCE(EXCLUDED.source_url, source_datasets.source_url)
		RETURNING id, city_id, name, format, source_url, last_loaded_at, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var ds Dataset
	err := r.db.QueryRow(ctx, query, cityID, name, format, sourceURL).Scan(
		&ds.ID,
		&ds.CityID,
		&ds.Name,
		&ds.Format,
		&ds.SourceURL,
		&ds.LastLoadedAt,
		&ds.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting source dataset: %w", err)
	}
	return &ds, nil
}

func (r *Repository) MarkLoaded(ctx context.Context, datasetID int64) error {
	query := `UPDATE source_datasets SET last_loaded_at = now() WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, datasetID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source dataset %d not found", datasetID)
	}
	return nil
}
