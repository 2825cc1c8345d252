package fountains

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yvrfountains/internal/db"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db db.Querier
}

func NewRepository(db db.Querier) *Repository {
	return &Repository{db: db}
}

const fountainColumns = `
	id, city_id, source_dataset_id, name, neighbourhood, location_description,
	lat, lon, operational_status, season_note, pet_friendly, bottle_filler,
	wheelchair_accessible, original_ref, photo_url, active, created_at, updated_at
`

func scanFountain(row pgx.Row, f *Fountain) error {
	return row.Scan(
		&f.ID,
		&f.CityID,
		&f.SourceDatasetID,
		&f.Name,
		&f.Neighbourhood,
		&f.LocationDescription,
		&f.Lat,
		&f.Lon,
		&f.OperationalStatus,
		&f.SeasonNote,
		&f.PetFriendly,
		&f.BottleFiller,
		&f.WheelchairAccessible,
		&f.OriginalRef,
		&f.PhotoURL,
		&f.Active,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
}

// GetByID returns a fountain regardless of its active flag. Callers on the
// public read path are expected to treat inactive fountains as not found.
func (r *Repository) GetByID(ctx context.Context, fountainID int64) (*Fountain, error) {
	query := `SELECT ` + fountainColumns + ` FROM fountains WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var f Fountain
	if err := scanFountain(r.db.QueryRow(ctx, query, fountainID), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFountainNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]Fountain, error) {
	query := `SELECT ` + fountainColumns + ` FROM fountains WHERE active ORDER BY name, id`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fountains []Fountain
	for rows.Next() {
		var f Fountain
		if err := scanFountain(rows, &f); err != nil {
			return nil, err
		}
		fountains = append(fountains, f)
	}
	return fountains, rows.Err()
}

// GetOverviewByID reads a single row from the fountain_details view, which
// only contains active fountains. Missing and inactive fountains are
// indistinguishable here on purpose.
func (r *Repository) GetOverviewByID(ctx context.Context, fountainID int64) (*Overview, error) {
	query := `
		SELECT id, city_id, source_dataset_id, name, neighbourhood, location_description,
		       lat, lon, operational_status, season_note, pet_friendly, bottle_filler,
		       wheelchair_accessible, original_ref, photo_url, active, created_at, updated_at,
		       average_rating, approved_count, admin_approved_count, latest_reviewed_at
		FROM fountain_details
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var o Overview
	err := r.db.QueryRow(ctx, query, fountainID).Scan(
		&o.ID,
		&o.CityID,
		&o.SourceDatasetID,
		&o.Name,
		&o.Neighbourhood,
		&o.LocationDescription,
		&o.Lat,
		&o.Lon,
		&o.OperationalStatus,
		&o.SeasonNote,
		&o.PetFriendly,
		&o.BottleFiller,
		&o.WheelchairAccessible,
		&o.OriginalRef,
		&o.PhotoURL,
		&o.Active,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.AverageRating,
		&o.ApprovedCount,
		&o.AdminApprovedCount,
		&o.LatestReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFountainNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *Repository) ListOverview(ctx context.Context) ([]Overview, error) {
	query := `
		SELECT id, city_id, source_dataset_id, name, neighbourhood, location_description,
		       lat, lon, operational_status, season_note, pet_friendly, bottle_filler,
		       wheelchair_accessible, original_ref, photo_url, active, created_at, updated_at,
		       average_rating, approved_count, admin_approved_count, latest_reviewed_at
		FROM fountain_details
		ORDER BY name, id
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overviews []Overview
	for rows.Next() {
		var o Overview
		err := rows.Scan(
			&o.ID,
			&o.CityID,
			&o.SourceDatasetID,
			&o.Name,
			&o.Neighbourhood,
			&o.LocationDescription,
			&o.Lat,
			&o.Lon,
			&o.OperationalStatus,
			&o.SeasonNote,
			&o.PetFriendly,
			&o.BottleFiller,
			&o.WheelchairAccessible,
			&o.OriginalRef,
			&o.PhotoURL,
			&o.Active,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.AverageRating,
			&o.ApprovedCount,
			&o.AdminApprovedCount,
			&o.LatestReviewedAt,
		)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

// Create inserts a fountain. The geom column is derived from lon/lat in the
// same statement so the two can never drift apart.
func (r *Repository) Create(ctx context.Context, fountain *Fountain) error {
	const query = `
		INSERT INTO fountains (
			city_id, source_dataset_id, name, neighbourhood, location_description,
			lat, lon, geom, operational_status, season_note, pet_friendly,
			bottle_filler, wheelchair_accessible, original_ref, active
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, ST_SetSRID(ST_MakePoint($7, $6), 4326),
			$8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		fountain.CityID,
		fountain.SourceDatasetID,
		fountain.Name,
		fountain.Neighbourhood,
		fountain.LocationDescription,
		fountain.Lat,
		fountain.Lon,
		fountain.OperationalStatus,
		fountain.SeasonNote,
		fountain.PetFriendly,
		fountain.BottleFiller,
		fountain.WheelchairAccessible,
		fountain.OriginalRef,
		fountain.Active,
	).Scan(&fountain.ID, &fountain.CreatedAt, &fountain.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting fountain: %w", err)
	}
	return nil
}

// Update applies a partial update. Callers must put lat and lon in the map
// together or not at all, so the geom column can be rebuilt from the new pair.
func (r *Repository) Update(ctx context.Context, fountainID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1
	latArg, lonArg := 0, 0

	for column, value := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argCounter))
		args = append(args, value)
		switch column {
		case "lat":
			latArg = argCounter
		case "lon":
			lonArg = argCounter
		}
		argCounter++
	}

	if latArg != 0 || lonArg != 0 {
		if latArg == 0 || lonArg == 0 {
			return fmt.Errorf("lat and lon must be updated together")
		}
		setClauses = append(setClauses,
			fmt.Sprintf("geom = ST_SetSRID(ST_MakePoint($%d, $%d), 4326)", lonArg, latArg))
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE fountains SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), argCounter)
	args = append(args, fountainID)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating fountain: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFountainNotFound
	}
	return nil
}

// SetActive soft-deletes (or restores) a fountain. Reviews stay in place.
func (r *Repository) SetActive(ctx context.Context, fountainID int64, active bool) error {
	query := `UPDATE fountains SET active = $2, updated_at = now() WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, fountainID, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFountainNotFound
	}
	return nil
}

func (r *Repository) SetPhotoURL(ctx context.Context, fountainID int64, photoURL string) error {
	query := `UPDATE fountains SET photo_url = $2, updated_at = now() WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, fountainID, photoURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFountainNotFound
	}
	return nil
}

// UpsertByOriginalRef inserts or refreshes an imported fountain, keyed on
// (source_dataset_id, original_ref). Admin-managed columns (photo_url,
// active) are left untouched on conflict so re-imports never undo curation.
func (r *Repository) UpsertByOriginalRef(ctx context.Context, fountain *Fountain) (bool, error) {
	if fountain.OriginalRef == nil || fountain.SourceDatasetID == nil {
		return false, fmt.Errorf("upsert requires source_dataset_id and original_ref")
	}

	const query = `
		INSERT INTO fountains (
			city_id, source_dataset_id, name, neighbourhood, location_description,
			lat, lon, geom, operational_status, season_note, pet_friendly,
			bottle_filler, wheelchair_accessible, original_ref, active
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, ST_SetSRID(ST_MakePoint($7, $6), 4326),
			$8, $9, $10, $11, $12, $13, true
		)
		ON CONFLICT (source_dataset_id, original_ref) WHERE original_ref IS NOT NULL
		DO UPDATE SET
			name = EXCLUDED.name,
			neighbourhood = EXCLUDED.neighbourhood,
			location_description = EXCLUDED.location_description,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			geom = EXCLUDED.geom,
			operational_status = EXCLUDED.operational_status,
			season_note = EXCLUDED.season_note,
			pet_friendly = EXCLUDED.pet_friendly,
			bottle_filler = EXCLUDED.bottle_filler,
			wheelchair_accessible = EXCLUDED.wheelchair_accessible,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		fountain.CityID,
		fountain.SourceDatasetID,
		fountain.Name,
		fountain.Neighbourhood,
		fountain.LocationDescription,
		fountain.Lat,
		fountain.Lon,
		fountain.OperationalStatus,
		fountain.SeasonNote,
		fountain.PetFriendly,
		fountain.BottleFiller,
		fountain.WheelchairAccessible,
		fountain.OriginalRef,
	).Scan(&fountain.ID, &fountain.CreatedAt, &fountain.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("upserting fountain: %w", err)
	}

	// created_at and updated_at come from the same now() only on insert;
	// the conflict branch bumps updated_at past it.
	return fountain.CreatedAt.Equal(fountain.UpdatedAt), nil
}
