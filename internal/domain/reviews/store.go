package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yvrfountains/internal/db"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db db.Querier
}

func NewRepository(db db.Querier) *Repository {
	return &Repository{db: db}
}

const reviewColumns = `
	id, fountain_id, author, status, overall_rating, water_quality,
	flow_pressure, temperature, drainage, accessibility, body, reviewer_name,
	reviewer_email, post_url, post_caption, visit_date, receipt, created_at,
	moderated_at, moderated_by, moderation_note
`

func scanReview(row pgx.Row, rv *Review) error {
	var author, status string
	err := row.Scan(
		&rv.ID,
		&rv.FountainID,
		&author,
		&status,
		&rv.Ratings.Overall,
		&rv.Ratings.WaterQuality,
		&rv.Ratings.FlowPressure,
		&rv.Ratings.Temperature,
		&rv.Ratings.Drainage,
		&rv.Ratings.Accessibility,
		&rv.Body,
		&rv.ReviewerName,
		&rv.ReviewerEmail,
		&rv.PostURL,
		&rv.PostCaption,
		&rv.VisitDate,
		&rv.Receipt,
		&rv.CreatedAt,
		&rv.ModeratedAt,
		&rv.ModeratedBy,
		&rv.ModerationNote,
	)
	if err != nil {
		return err
	}
	rv.Author = AuthorKind(author)
	rv.Status = Status(status)
	return nil
}

// CreatePending inserts a public submission. The statement hardcodes
// author and status so no caller can write anything but public/pending
// through this path.
func (r *Repository) CreatePending(ctx context.Context, review *Review) error {
	const query = `
		INSERT INTO reviews (
			fountain_id, author, status, overall_rating, water_quality,
			flow_pressure, temperature, drainage, accessibility, body,
			reviewer_name, reviewer_email, visit_date, receipt
		) VALUES (
			$1, 'public', 'pending', $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		review.FountainID,
		review.Ratings.Overall,
		review.Ratings.WaterQuality,
		review.Ratings.FlowPressure,
		review.Ratings.Temperature,
		review.Ratings.Drainage,
		review.Ratings.Accessibility,
		review.Body,
		review.ReviewerName,
		review.ReviewerEmail,
		review.VisitDate,
		review.Receipt,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting pending review: %w", err)
	}

	review.Author = AuthorPublic
	review.Status = StatusPending
	return nil
}

// CreateApproved inserts an admin review that is approved from birth. The
// moderation fields are written by the same INSERT, so there is no window
// in which an admin-authored row exists without them.
func (r *Repository) CreateApproved(ctx context.Context, review *Review, adminID int64) error {
	const query = `
		INSERT INTO reviews (
			fountain_id, author, status, overall_rating, water_quality,
			flow_pressure, temperature, drainage, accessibility, body,
			post_url, post_caption, visit_date, receipt, moderated_at, moderated_by
		) VALUES (
			$1, 'admin', 'approved', $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), $13
		)
		RETURNING id, created_at, moderated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		review.FountainID,
		review.Ratings.Overall,
		review.Ratings.WaterQuality,
		review.Ratings.FlowPressure,
		review.Ratings.Temperature,
		review.Ratings.Drainage,
		review.Ratings.Accessibility,
		review.Body,
		review.PostURL,
		review.PostCaption,
		review.VisitDate,
		review.Receipt,
		adminID,
	).Scan(&review.ID, &review.CreatedAt, &review.ModeratedAt)
	if err != nil {
		return fmt.Errorf("inserting admin review: %w", err)
	}

	review.Author = AuthorAdmin
	review.Status = StatusApproved
	review.ModeratedBy = &adminID
	return nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var rv Review
	if err := scanReview(r.db.QueryRow(ctx, query, reviewID), &rv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// ListPending returns the moderation queue oldest-first, plus the true
// total for pagination metadata.
func (r *Repository) ListPending(ctx context.Context, limit, offset int) ([]Review, int, error) {
	query := `
		SELECT ` + reviewColumns + `, COUNT(*) OVER() AS total_count
		FROM reviews
		WHERE status = 'pending'
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`
	return r.listWithTotal(ctx,
		query, []interface{}{limit, offset},
		`SELECT COUNT(*) FROM reviews WHERE status = 'pending'`, nil,
		offset)
}

// ListApprovedByFountain returns published reviews newest-first, using the
// same ordering that picks the "latest" review in the rating summary.
func (r *Repository) ListApprovedByFountain(ctx context.Context, fountainID int64, limit, offset int) ([]Review, int, error) {
	query := `
		SELECT ` + reviewColumns + `, COUNT(*) OVER() AS total_count
		FROM reviews
		WHERE fountain_id = $1 AND status = 'approved'
		ORDER BY COALESCE(moderated_at, visit_date, created_at) DESC, created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	return r.listWithTotal(ctx,
		query, []interface{}{fountainID, limit, offset},
		`SELECT COUNT(*) FROM reviews WHERE fountain_id = $1 AND status = 'approved'`, []interface{}{fountainID},
		offset)
}

func (r *Repository) listWithTotal(ctx context.Context, query string, args []interface{}, countQuery string, countArgs []interface{}, offset int) ([]Review, int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	var (
		result []Review
		total  int
	)
	for rows.Next() {
		var rv Review
		var author, status string
		var t int
		err := rows.Scan(
			&rv.ID,
			&rv.FountainID,
			&author,
			&status,
			&rv.Ratings.Overall,
			&rv.Ratings.WaterQuality,
			&rv.Ratings.FlowPressure,
			&rv.Ratings.Temperature,
			&rv.Ratings.Drainage,
			&rv.Ratings.Accessibility,
			&rv.Body,
			&rv.ReviewerName,
			&rv.ReviewerEmail,
			&rv.PostURL,
			&rv.PostCaption,
			&rv.VisitDate,
			&rv.Receipt,
			&rv.CreatedAt,
			&rv.ModeratedAt,
			&rv.ModeratedBy,
			&rv.ModerationNote,
			&t,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning review: %w", err)
		}
		rv.Author = AuthorKind(author)
		rv.Status = Status(status)
		if total == 0 {
			total = t
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// Paged past the end: no rows carried the window total.
	if len(result) == 0 && offset > 0 {
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("counting reviews: %w", err)
		}
	}
	return result, total, nil
}

// Transition moves a pending review to a terminal status with a
// compare-and-swap: the UPDATE only matches while the row is still
// pending, so of two concurrent moderators exactly one wins. Zero affected
// rows is disambiguated by re-reading the review.
func (r *Repository) Transition(ctx context.Context, reviewID int64, target Status, adminID int64, note *string) (*Review, error) {
	query := `
		UPDATE reviews
		SET status = $2, moderated_at = now(), moderated_by = $3, moderation_note = $4
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + reviewColumns

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var rv Review
	err := scanReview(r.db.QueryRow(ctx, query, reviewID, string(target), adminID, note), &rv)
	if err == nil {
		return &rv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transitioning review: %w", err)
	}

	// The row was not pending, or does not exist at all.
	if _, err := r.GetByID(ctx, reviewID); err != nil {
		return nil, err
	}
	return nil, ErrInvalidTransition
}

func (r *Repository) CountByStatus(ctx context.Context, status Status, since *time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reviews
		WHERE status = $1 AND ($2::timestamptz IS NULL OR created_at >= $2)
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var count int
	if err := r.db.QueryRow(ctx, query, string(status), since).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting reviews: %w", err)
	}
	return count, nil
}

// Overview reads the per-fountain aggregate from the rating summary view in
// a single statement, so the numbers and the latest review always come from
// one snapshot.
func (r *Repository) Overview(ctx context.Context, fountainID int64) (*Overview, error) {
	const query = `
		SELECT s.fountain_id, s.average_rating, s.approved_count, s.admin_approved_count,
		       r.id, r.fountain_id, r.author, r.status, r.overall_rating, r.water_quality,
		       r.flow_pressure, r.temperature, r.drainage, r.accessibility, r.body,
		       r.reviewer_name, r.reviewer_email, r.post_url, r.post_caption, r.visit_date,
		       r.receipt, r.created_at, r.moderated_at, r.moderated_by, r.moderation_note
		FROM fountain_rating_summary s
		LEFT JOIN reviews r ON r.id = s.latest_review_id
		WHERE s.fountain_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var (
		o Overview

		latestID         *int64
		latestFountainID *int64
		author           *string
		status           *string
		overall          *int
		waterQuality     *int
		flowPressure     *int
		temperature      *int
		drainage         *int
		accessibility    *int
		body             *string
		reviewerName     *string
		reviewerEmail    *string
		postURL          *string
		postCaption      *string
		visitDate        *time.Time
		receipt          *string
		createdAt        *time.Time
		moderatedAt      *time.Time
		moderatedBy      *int64
		moderationNote   *string
	)

	err := r.db.QueryRow(ctx, query, fountainID).Scan(
		&o.FountainID,
		&o.AverageRating,
		&o.ApprovedCount,
		&o.AdminApprovedCount,
		&latestID,
		&latestFountainID,
		&author,
		&status,
		&overall,
		&waterQuality,
		&flowPressure,
		&temperature,
		&drainage,
		&accessibility,
		&body,
		&reviewerName,
		&reviewerEmail,
		&postURL,
		&postCaption,
		&visitDate,
		&receipt,
		&createdAt,
		&moderatedAt,
		&moderatedBy,
		&moderationNote,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no rating summary row for fountain %d: %w", fountainID, err)
		}
		return nil, fmt.Errorf("reading fountain overview: %w", err)
	}

	if latestID != nil {
		o.LatestApprovedReview = &Review{
			ID:         *latestID,
			FountainID: *latestFountainID,
			Author:     AuthorKind(*author),
			Status:     Status(*status),
			Ratings: Ratings{
				Overall:       *overall,
				WaterQuality:  waterQuality,
				FlowPressure:  flowPressure,
				Temperature:   temperature,
				Drainage:      drainage,
				Accessibility: accessibility,
			},
			Body:           body,
			ReviewerName:   reviewerName,
			ReviewerEmail:  reviewerEmail,
			PostURL:        postURL,
			PostCaption:    postCaption,
			VisitDate:      *visitDate,
			Receipt:        receipt,
			CreatedAt:      *createdAt,
			ModeratedAt:    moderatedAt,
			ModeratedBy:    moderatedBy,
			ModerationNote: moderationNote,
		}
	}
	return &o, nil
}
