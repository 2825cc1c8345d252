package reviews

import (
	"context"
	"strings"
	"time"

	"yvrfountains/internal/authz"
	"yvrfountains/internal/domain/fountains"
	"yvrfountains/internal/gate"

	"go.uber.org/zap"
)

// FountainDirectory is the slice of the fountain store the engine needs
// for existence checks.
type FountainDirectory interface {
	GetByID(ctx context.Context, fountainID int64) (*fountains.Fountain, error)
}

// Notifier tells the moderation inbox about new pending submissions.
// Failures are logged and swallowed; notification is best effort.
type Notifier interface {
	PendingReviewSubmitted(review *Review, fountain *fountains.Fountain) error
}

// Engine owns the review lifecycle. Every operation consults the
// authorization policy before touching storage, so the policy and the
// enforced behavior cannot drift apart.
type Engine struct {
	store     Store
	fountains FountainDirectory
	receipts  *ReceiptGenerator
	notifier  Notifier
	logger    *zap.SugaredLogger
}

func NewEngine(store Store, fountains FountainDirectory, receipts *ReceiptGenerator, notifier Notifier, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		store:     store,
		fountains: fountains,
		receipts:  receipts,
		notifier:  notifier,
		logger:    logger,
	}
}

// SubmitPublicInput carries a public submission as received, including any
// fields the caller had no business setting. The engine rejects those with
// ErrForbidden instead of stripping them.
type SubmitPublicInput struct {
	FountainID    int64
	Author        AuthorKind // optional; anything but public is denied
	Status        Status     // optional; anything but pending is denied
	Ratings       Ratings
	Body          *string
	ReviewerName  string
	ReviewerEmail *string
	PostURL       *string // admin-only
	PostCaption   *string // admin-only
	VisitDate     time.Time
}

type SubmitAdminInput struct {
	FountainID  int64
	Ratings     Ratings
	Body        *string
	PostURL     *string
	PostCaption *string
	VisitDate   time.Time
}

func (e *Engine) SubmitPublic(ctx context.Context, in SubmitPublicInput) (*Receipt, error) {
	author := in.Author
	if author == "" {
		author = AuthorPublic
	}
	status := in.Status
	if status == "" {
		status = StatusPending
	}

	// Authorization comes before the fountain lookup, so a forbidden
	// payload learns nothing about which fountain ids exist.
	payload := &authz.ReviewPayload{
		Author:          string(author),
		Status:          string(status),
		HasExternalPost: in.PostURL != nil || in.PostCaption != nil,
	}
	if !authz.Decide(authz.Anonymous(), authz.CreatePublicReview, authz.Resource{Review: payload}).Permitted() {
		return nil, ErrForbidden
	}

	fountain, err := e.lookupActiveFountain(ctx, in.FountainID)
	if err != nil {
		return nil, err
	}

	if err := in.Ratings.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.ReviewerName)
	if name == "" {
		return nil, &ValidationError{Field: "reviewer_name", Message: "is required"}
	}
	if err := validateVisitDate(in.VisitDate); err != nil {
		return nil, err
	}

	code, err := e.receipts.Generate(in.FountainID)
	if err != nil {
		return nil, err
	}

	review := &Review{
		FountainID:    in.FountainID,
		Ratings:       in.Ratings,
		Body:          in.Body,
		ReviewerName:  &name,
		ReviewerEmail: in.ReviewerEmail,
		VisitDate:     in.VisitDate,
		Receipt:       &code,
	}
	if err := e.store.CreatePending(ctx, review); err != nil {
		return nil, err
	}

	e.logger.Infow("public review submitted",
		"review_id", review.ID,
		"fountain_id", in.FountainID,
		"receipt", code,
	)

	if e.notifier != nil {
		if err := e.notifier.PendingReviewSubmitted(review, fountain); err != nil {
			e.logger.Errorw("moderation notification failed", "review_id", review.ID, "error", err)
		}
	}

	return &Receipt{ID: review.ID, Status: review.Status, Receipt: code}, nil
}

func (e *Engine) SubmitAdmin(ctx context.Context, adminCtx *gate.AdminContext, in SubmitAdminInput) (*Receipt, error) {
	payload := &authz.ReviewPayload{
		Author:          string(AuthorAdmin),
		Status:          string(StatusApproved),
		HasExternalPost: in.PostURL != nil || in.PostCaption != nil,
	}
	if !authz.Decide(actorFrom(adminCtx), authz.CreateAdminReview, authz.Resource{Review: payload}).Permitted() {
		return nil, ErrForbidden
	}

	if _, err := e.lookupActiveFountain(ctx, in.FountainID); err != nil {
		return nil, err
	}
	if err := in.Ratings.Validate(); err != nil {
		return nil, err
	}
	if err := validateVisitDate(in.VisitDate); err != nil {
		return nil, err
	}

	code, err := e.receipts.Generate(in.FountainID)
	if err != nil {
		return nil, err
	}

	review := &Review{
		FountainID:  in.FountainID,
		Ratings:     in.Ratings,
		Body:        in.Body,
		PostURL:     in.PostURL,
		PostCaption: in.PostCaption,
		VisitDate:   in.VisitDate,
		Receipt:     &code,
	}
	if err := e.store.CreateApproved(ctx, review, adminCtx.AdminID()); err != nil {
		return nil, err
	}

	e.logger.Infow("admin review published",
		"review_id", review.ID,
		"fountain_id", in.FountainID,
		"admin_id", adminCtx.AdminID(),
	)

	return &Receipt{ID: review.ID, Status: review.Status, Receipt: code}, nil
}

// Transition moves a pending review to approved or rejected. Terminal
// states never transition again; a concurrent moderator losing the race
// gets ErrInvalidTransition, not a silent overwrite.
func (e *Engine) Transition(ctx context.Context, adminCtx *gate.AdminContext, reviewID int64, target Status, note string) (*Review, error) {
	if !authz.Decide(actorFrom(adminCtx), authz.TransitionReview, authz.Resource{}).Permitted() {
		return nil, ErrForbidden
	}
	if target != StatusApproved && target != StatusRejected {
		return nil, ErrInvalidTransition
	}

	var notePtr *string
	if n := strings.TrimSpace(note); n != "" {
		notePtr = &n
	}

	review, err := e.store.Transition(ctx, reviewID, target, adminCtx.AdminID(), notePtr)
	if err != nil {
		return nil, err
	}

	e.logger.Infow("review moderated",
		"review_id", review.ID,
		"status", review.Status,
		"admin_id", adminCtx.AdminID(),
	)
	return review, nil
}

func (e *Engine) ListPending(ctx context.Context, adminCtx *gate.AdminContext, limit, offset int) ([]Review, int, error) {
	if !authz.Decide(actorFrom(adminCtx), authz.ReadPendingReview, authz.Resource{}).Permitted() {
		return nil, 0, ErrForbidden
	}
	return e.store.ListPending(ctx, limit, offset)
}

func (e *Engine) ListApprovedForFountain(ctx context.Context, fountainID int64, limit, offset int) ([]Review, int, error) {
	if !authz.Decide(authz.Anonymous(), authz.ReadApprovedReview, authz.Resource{}).Permitted() {
		return nil, 0, ErrForbidden
	}
	if _, err := e.lookupActiveFountain(ctx, fountainID); err != nil {
		return nil, 0, err
	}
	return e.store.ListApprovedByFountain(ctx, fountainID, limit, offset)
}

// CountByStatus backs the moderation stats endpoint. Counts over anything
// but approved reviews reveal moderation state, so they need the same
// capability as reading the pending queue.
func (e *Engine) CountByStatus(ctx context.Context, adminCtx *gate.AdminContext, status Status, since *time.Time) (int, error) {
	if !status.Valid() {
		return 0, &ValidationError{Field: "status", Message: "must be pending, approved or rejected"}
	}
	action := authz.ReadApprovedReview
	if status != StatusApproved {
		action = authz.ReadPendingReview
	}
	if !authz.Decide(actorFrom(adminCtx), action, authz.Resource{}).Permitted() {
		return 0, ErrForbidden
	}
	return e.store.CountByStatus(ctx, status, since)
}

// Overview recomputes the aggregate for one fountain at call time. There
// is no cache to invalidate: approving a review changes the next read.
func (e *Engine) Overview(ctx context.Context, fountainID int64) (*Overview, error) {
	if !authz.Decide(authz.Anonymous(), authz.ReadApprovedReview, authz.Resource{}).Permitted() {
		return nil, ErrForbidden
	}
	if _, err := e.lookupActiveFountain(ctx, fountainID); err != nil {
		return nil, err
	}
	return e.store.Overview(ctx, fountainID)
}

// lookupActiveFountain resolves a fountain for the submission and public
// read paths. Missing and inactive fountains are reported identically so
// callers cannot probe which ids exist.
func (e *Engine) lookupActiveFountain(ctx context.Context, fountainID int64) (*fountains.Fountain, error) {
	f, err := e.fountains.GetByID(ctx, fountainID)
	if err != nil {
		return nil, err
	}
	ref := &authz.FountainRef{Active: f.Active}
	if !authz.Decide(authz.Anonymous(), authz.ReadFountain, authz.Resource{Fountain: ref}).Permitted() {
		return nil, fountains.ErrFountainNotFound
	}
	return f, nil
}

func actorFrom(adminCtx *gate.AdminContext) authz.Actor {
	if adminCtx.Valid() {
		return authz.AuthenticatedUser(adminCtx.AdminID(), true)
	}
	return authz.Anonymous()
}

func validateVisitDate(visit time.Time) error {
	if visit.IsZero() {
		return &ValidationError{Field: "visit_date", Message: "is required"}
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if visit.UTC().Truncate(24*time.Hour).After(today) {
		return &ValidationError{Field: "visit_date", Message: "cannot be in the future"}
	}
	return nil
}
