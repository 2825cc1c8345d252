package admins

import (
	"context"
	"errors"
	"fmt"

	"yvrfountains/internal/db"
	"yvrfountains/internal/gate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, adminID int64) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Deactivate(ctx context.Context, adminID int64) error
	Delete(ctx context.Context, adminID int64) error
	SaveRefreshToken(ctx context.Context, adminID int64, refreshToken string) error
	DeleteRefreshToken(ctx context.Context, adminID int64) error
	GetRefreshToken(ctx context.Context, adminID int64) (string, error)

	// The repository doubles as the gate's two collaborators.
	Verify(ctx context.Context, email, password string) (gate.Identity, error)
	IsAdmin(ctx context.Context, identityID int64) (bool, error)
}

type Repository struct {
	db db.Querier
}

func NewRepository(db db.Querier) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, admin *Admin) error {
	const query = `
		INSERT INTO admins (email, name, password)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, admin.Email, admin.Name, admin.Password.hash).
		Scan(&admin.ID, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting admin: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, adminID int64) (*Admin, error) {
	const query = `
		SELECT id, email, name, password, refresh_token, is_active, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var admin Admin
	err := r.db.QueryRow(ctx, query, adminID).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.Password.hash,
		&admin.RefreshToken,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	const query = `
		SELECT id, email, name, password, refresh_token, is_active, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var admin Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.Password.hash,
		&admin.RefreshToken,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) List(ctx context.Context) ([]Admin, error) {
	const query = `
		SELECT id, email, name, is_active, created_at, updated_at
		FROM admins
		ORDER BY created_at ASC, id ASC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []Admin
	for rows.Next() {
		var admin Admin
		err := rows.Scan(
			&admin.ID,
			&admin.Email,
			&admin.Name,
			&admin.IsActive,
			&admin.CreatedAt,
			&admin.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// Deactivate removes moderation capability and invalidates the stored
// refresh token in the same statement.
func (r *Repository) Deactivate(ctx context.Context, adminID int64) error {
	const query = `
		UPDATE admins
		SET is_active = false, refresh_token = NULL, updated_at = now()
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Delete removes an admin row outright. Only the invitation rollback path
// uses this; operator-facing removal is Deactivate.
func (r *Repository) Delete(ctx context.Context, adminID int64) error {
	const query = `DELETE FROM admins WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *Repository) SaveRefreshToken(ctx context.Context, adminID int64, refreshToken string) error {
	query := `UPDATE admins SET refresh_token = $1, updated_at = now() WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, query, refreshToken, adminID)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *Repository) DeleteRefreshToken(ctx context.Context, adminID int64) error {
	query := `UPDATE admins SET refresh_token = NULL, updated_at = now() WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, query, adminID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *Repository) GetRefreshToken(ctx context.Context, adminID int64) (string, error) {
	query := `SELECT refresh_token FROM admins WHERE id = $1 AND is_active`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var refreshToken *string
	if err := r.db.QueryRow(ctx, query, adminID).Scan(&refreshToken); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrAdminNotFound
		}
		return "", fmt.Errorf("failed to retrieve refresh token: %w", err)
	}
	if refreshToken == nil {
		return "", nil
	}
	return *refreshToken, nil
}

// Verify implements gate.Verifier with a bcrypt compare. A missing account
// and a wrong password both come back as gate.ErrBadCredentials.
func (r *Repository) Verify(ctx context.Context, email, password string) (gate.Identity, error) {
	admin, err := r.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return gate.Identity{}, gate.ErrBadCredentials
		}
		return gate.Identity{}, err
	}
	if err := admin.Password.Compare(password); err != nil {
		return gate.Identity{}, gate.ErrBadCredentials
	}
	return gate.Identity{ID: admin.ID, Email: admin.Email}, nil
}

// IsAdmin implements gate.Registry. Deactivated admins are out of the
// registry even though their credentials may still verify.
func (r *Repository) IsAdmin(ctx context.Context, identityID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1 AND is_active)`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var member bool
	if err := r.db.QueryRow(ctx, query, identityID).Scan(&member); err != nil {
		return false, err
	}
	return member, nil
}
