package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrInvalidTransition = errors.New("invalid review status transition")
	ErrForbidden         = errors.New("forbidden")
)

const QueryTimeoutDuration = time.Second * 5

// Rating bounds shared by the overall score and every sub-score.
const (
	RatingMin = 1
	RatingMax = 10
)

type AuthorKind string

const (
	AuthorPublic AuthorKind = "public"
	AuthorAdmin  AuthorKind = "admin"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a review in this status can never transition
// again. Approved and rejected are terminal; reopening is an out-of-band
// database intervention, not an engine operation.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Ratings is the overall score plus five optional sub-scores, all on the
// same 1..10 scale.
type Ratings struct {
	Overall       int  `json:"overall"`
	WaterQuality  *int `json:"water_quality,omitempty"`
	FlowPressure  *int `json:"flow_pressure,omitempty"`
	Temperature   *int `json:"temperature,omitempty"`
	Drainage      *int `json:"drainage,omitempty"`
	Accessibility *int `json:"accessibility,omitempty"`
}

// Validate bounds-checks every score that is present. Out-of-range values
// are rejected, never clamped.
func (r Ratings) Validate() error {
	if err := boundsCheck("overall", &r.Overall); err != nil {
		return err
	}
	if err := boundsCheck("water_quality", r.WaterQuality); err != nil {
		return err
	}
	if err := boundsCheck("flow_pressure", r.FlowPressure); err != nil {
		return err
	}
	if err := boundsCheck("temperature", r.Temperature); err != nil {
		return err
	}
	if err := boundsCheck("drainage", r.Drainage); err != nil {
		return err
	}
	return boundsCheck("accessibility", r.Accessibility)
}

func boundsCheck(field string, score *int) error {
	if score == nil {
		return nil
	}
	if *score < RatingMin || *score > RatingMax {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", RatingMin, RatingMax)}
	}
	return nil
}

// ValidationError reports a single rejected input field. Handlers map it to
// a 400 with the field name in the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Review represents one rating submission tied to a fountain.
type Review struct {
	ID             int64      `json:"id"`
	FountainID     int64      `json:"fountain_id"`
	Author         AuthorKind `json:"author"`
	Status         Status     `json:"status"`
	Ratings        Ratings    `json:"ratings"`
	Body           *string    `json:"body,omitempty"`
	ReviewerName   *string    `json:"reviewer_name,omitempty"`
	ReviewerEmail  *string    `json:"-"`
	PostURL        *string    `json:"post_url,omitempty"`
	PostCaption    *string    `json:"post_caption,omitempty"`
	VisitDate      time.Time  `json:"visit_date"`
	Receipt        *string    `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	ModeratedAt    *time.Time `json:"moderated_at,omitempty"`
	ModeratedBy    *int64     `json:"moderated_by,omitempty"`
	ModerationNote *string    `json:"-"`
}

// Overview is the per-fountain aggregate over approved reviews, recomputed
// from the fountain_rating_summary view on every call. AverageRating is nil
// when nothing is approved yet.
type Overview struct {
	FountainID           int64    `json:"fountain_id"`
	AverageRating        *float64 `json:"average_rating"`
	ApprovedCount        int      `json:"approved_count"`
	AdminApprovedCount   int      `json:"admin_approved_count"`
	LatestApprovedReview *Review  `json:"latest_approved_review,omitempty"`
}

// Receipt is what a submitter gets back: the stored review id and status
// plus a short reference code.
type Receipt struct {
	ID      int64  `json:"id"`
	Status  Status `json:"status"`
	Receipt string `json:"receipt"`
}

type Store interface {
	// CreatePending inserts a public submission. Author and status are
	// forced to public/pending by the statement itself.
	CreatePending(ctx context.Context, review *Review) error
	// CreateApproved inserts an admin review born approved, with
	// moderated_at and moderated_by set in the same statement.
	CreateApproved(ctx context.Context, review *Review, adminID int64) error
	GetByID(ctx context.Context, reviewID int64) (*Review, error)
	ListPending(ctx context.Context, limit, offset int) ([]Review, int, error)
	ListApprovedByFountain(ctx context.Context, fountainID int64, limit, offset int) ([]Review, int, error)
	// Transition applies pending→target with a conditional update; see
	// the engine for the error contract.
	Transition(ctx context.Context, reviewID int64, target Status, adminID int64, note *string) (*Review, error)
	CountByStatus(ctx context.Context, status Status, since *time.Time) (int, error)
	Overview(ctx context.Context, fountainID int64) (*Overview, error)
}
