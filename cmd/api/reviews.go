package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"yvrfountains/internal/domain/fountains"
	"yvrfountains/internal/domain/reviews"
	"yvrfountains/internal/params"

	"github.com/go-chi/chi/v5"
)

// submitReviewPayload deliberately includes author, status and the external
// post fields. They are forwarded to the engine as received; a payload that
// sets any of them is denied there rather than silently cleaned up.
type submitReviewPayload struct {
	Author        string          `json:"author,omitempty"`
	Status        string          `json:"status,omitempty"`
	Ratings       reviews.Ratings `json:"ratings" validate:"required"`
	Body          *string         `json:"body,omitempty" validate:"omitempty,max=2000"`
	ReviewerName  string          `json:"reviewer_name" validate:"required,max=100"`
	ReviewerEmail *string         `json:"reviewer_email,omitempty" validate:"omitempty,email"`
	PostURL       *string         `json:"post_url,omitempty"`
	PostCaption   *string         `json:"post_caption,omitempty"`
	VisitDate     string          `json:"visit_date" validate:"required"`
}

// SubmitReview godoc
//
//	@Summary		Submit a fountain review
//	@Description	Anonymous submission. The review enters the moderation queue as pending and is invisible to the public until approved.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			fountainID	path		int					true	"Fountain ID"
//	@Param			review		body		submitReviewPayload	true	"Review details"
//	@Success		202			{object}	reviews.Receipt		"Review accepted for moderation"
//	@Failure		400			{object}	error				"Invalid request payload"
//	@Failure		403			{object}	error				"Payload sets moderation-only fields"
//	@Failure		404			{object}	error				"Fountain not found"
//	@Failure		429			{object}	error				"Rate limit exceeded"
//	@Failure		500			{object}	error				"Internal server error"
//	@Router			/fountains/{fountainID}/reviews [post]
func (app *application) submitPublicReviewHandler(w http.ResponseWriter, r *http.Request) {
	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	var payload submitReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	visitDate, err := time.Parse("2006-01-02", payload.VisitDate)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("visit_date must be formatted as YYYY-MM-DD"))
		return
	}

	receipt, err := app.engine.SubmitPublic(r.Context(), reviews.SubmitPublicInput{
		FountainID:    fountainID,
		Author:        reviews.AuthorKind(payload.Author),
		Status:        reviews.Status(payload.Status),
		Ratings:       payload.Ratings,
		Body:          payload.Body,
		ReviewerName:  payload.ReviewerName,
		ReviewerEmail: payload.ReviewerEmail,
		PostURL:       payload.PostURL,
		PostCaption:   payload.PostCaption,
		VisitDate:     visitDate,
	})
	if err != nil {
		app.reviewErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusAccepted, receipt); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListApprovedReviews godoc
//
//	@Summary		List approved reviews for a fountain
//	@Description	Returns approved reviews ordered by moderation recency, paginated
//	@Tags			Reviews
//	@Produce		json
//	@Param			fountainID	path		int	true	"Fountain ID"
//	@Param			page		query		int	false	"Page number"		default(1)
//	@Param			limit		query		int	false	"Items per page"	default(20)
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	error	"Invalid fountain ID"
//	@Failure		404			{object}	error	"Fountain not found"
//	@Failure		500			{object}	error	"Internal server error"
//	@Router			/fountains/{fountainID}/reviews [get]
func (app *application) listApprovedReviewsHandler(w http.ResponseWriter, r *http.Request) {
	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	pagination := params.ParsePagination(r.URL.Query())

	list, total, err := app.engine.ListApprovedForFountain(r.Context(), fountainID, pagination.Limit, pagination.Offset)
	if err != nil {
		app.reviewErrorResponse(w, r, err)
		return
	}

	pagination.ComputeMeta(total)

	response := map[string]interface{}{
		"reviews":    list,
		"pagination": pagination,
	}

	app.jsonResponse(w, http.StatusOK, response)
}

// reviewErrorResponse maps engine errors onto the response taxonomy shared
// by the public and admin review handlers.
func (app *application) reviewErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *reviews.ValidationError

	switch {
	case errors.As(err, &validationErr):
		app.badRequestResponse(w, r, validationErr)
	case errors.Is(err, reviews.ErrForbidden):
		app.forbiddenResponse(w, r)
	case errors.Is(err, fountains.ErrFountainNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, reviews.ErrReviewNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, reviews.ErrInvalidTransition):
		app.conflictResponse(w, r, err)
	default:
		app.storageErrorResponse(w, r, err)
	}
}
