package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"yvrfountains/internal/domain/reviews"
	"yvrfountains/internal/params"

	"github.com/go-chi/chi/v5"
)

// ListPendingReviews godoc
//
//	@Summary		Moderation queue
//	@Description	Returns pending reviews oldest first, paginated
//	@Tags			Moderation
//	@Produce		json
//	@Param			page	query		int	false	"Page number"		default(1)
//	@Param			limit	query		int	false	"Items per page"	default(20)
//	@Success		200		{object}	map[string]interface{}
//	@Failure		401		{object}	error	"Unauthorized"
//	@Failure		403		{object}	error	"Forbidden"
//	@Failure		500		{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/pending [get]
func (app *application) listPendingReviewsHandler(w http.ResponseWriter, r *http.Request) {
	admin := getAdminFromContext(r)

	pagination := params.ParsePagination(r.URL.Query())

	list, total, err := app.engine.ListPending(r.Context(), admin, pagination.Limit, pagination.Offset)
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

type moderateReviewPayload struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Note     string `json:"note,omitempty" validate:"omitempty,max=1000"`
}

// ModerateReview godoc
//
//	@Summary		Approve or reject a pending review
//	@Description	Moves a pending review to its terminal status. Already-moderated reviews conflict; they are never overwritten.
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int						true	"Review ID"
//	@Param			decision	body		moderateReviewPayload	true	"Moderation decision"
//	@Success		200			{object}	reviews.Review			"Moderated review"
//	@Failure		400			{object}	error					"Invalid request payload"
//	@Failure		404			{object}	error					"Review not found"
//	@Failure		409			{object}	error					"Review already moderated"
//	@Failure		500			{object}	error					"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/{reviewID} [patch]
func (app *application) moderateReviewHandler(w http.ResponseWriter, r *http.Request) {
	admin := getAdminFromContext(r)

	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	var payload moderateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	target := reviews.StatusApproved
	if payload.Decision == "reject" {
		target = reviews.StatusRejected
	}

	review, err := app.engine.Transition(r.Context(), admin, reviewID, target, payload.Note)
	if err != nil {
		app.reviewErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ReviewStats godoc
//
//	@Summary		Review counts by status
//	@Description	Returns how many reviews sit in each status, optionally restricted to submissions after ?since=YYYY-MM-DD
//	@Tags			Moderation
//	@Produce		json
//	@Param			since	query		string	false	"Count submissions on or after this date"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	error	"Invalid since parameter"
//	@Failure		500		{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/stats [get]
func (app *application) reviewStatsHandler(w http.ResponseWriter, r *http.Request) {
	admin := getAdminFromContext(r)

	var since *time.Time
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		parsed, err := time.Parse("2006-01-02", sinceStr)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("since must be formatted as YYYY-MM-DD"))
			return
		}
		since = &parsed
	}

	counts := map[string]int{}
	for _, status := range []reviews.Status{reviews.StatusPending, reviews.StatusApproved, reviews.StatusRejected} {
		n, err := app.engine.CountByStatus(r.Context(), admin, status, since)
		if err != nil {
			app.reviewErrorResponse(w, r, err)
			return
		}
		counts[string(status)] = n
	}

	response := map[string]interface{}{
		"counts": counts,
	}
	if since != nil {
		response["since"] = since.Format("2006-01-02")
	}

	app.jsonResponse(w, http.StatusOK, response)
}

type adminReviewPayload struct {
	Ratings     reviews.Ratings `json:"ratings" validate:"required"`
	Body        *string         `json:"body,omitempty" validate:"omitempty,max=2000"`
	PostURL     *string         `json:"post_url,omitempty" validate:"omitempty,url,max=500"`
	PostCaption *string         `json:"post_caption,omitempty" validate:"omitempty,max=2000"`
	VisitDate   string          `json:"visit_date" validate:"required"`
}

// SubmitAdminReview godoc
//
//	@Summary		Publish an admin review
//	@Description	Creates a review that is approved from birth, typically backing an external social post
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			fountainID	path		int					true	"Fountain ID"
//	@Param			review		body		adminReviewPayload	true	"Review details"
//	@Success		201			{object}	reviews.Receipt		"Review published"
//	@Failure		400			{object}	error				"Invalid request payload"
//	@Failure		404			{object}	error				"Fountain not found"
//	@Failure		500			{object}	error				"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/fountains/{fountainID}/reviews [post]
func (app *application) submitAdminReviewHandler(w http.ResponseWriter, r *http.Request) {
	admin := getAdminFromContext(r)

	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	var payload adminReviewPayload
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

	receipt, err := app.engine.SubmitAdmin(r.Context(), admin, reviews.SubmitAdminInput{
		FountainID:  fountainID,
		Ratings:     payload.Ratings,
		Body:        payload.Body,
		PostURL:     payload.PostURL,
		PostCaption: payload.PostCaption,
		VisitDate:   visitDate,
	})
	if err != nil {
		app.reviewErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, receipt); err != nil {
		app.internalServerError(w, r, err)
	}
}
