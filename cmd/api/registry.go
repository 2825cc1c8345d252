package main

import (
	"errors"
	"net/http"
	"strconv"

	"yvrfountains/internal/authz"
	"yvrfountains/internal/domain/admins"
	"yvrfountains/internal/mailer"

	"github.com/go-chi/chi/v5"
)

// ListAdmins godoc
//
//	@Summary		List registry members
//	@Description	Returns every admin, active and deactivated
//	@Tags			Registry
//	@Produce		json
//	@Success		200	{array}		admins.Admin
//	@Failure		403	{object}	error	"Forbidden"
//	@Failure		500	{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/registry [get]
func (app *application) listAdminsHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageAdminRegistry, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	list, err := app.store.Admins.List(r.Context())
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

type addAdminPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AddAdmin godoc
//
//	@Summary		Add an admin
//	@Description	Creates a registry entry and emails an invitation. Creation is rolled back if the invitation cannot be sent.
//	@Tags			Registry
//	@Accept			json
//	@Produce		json
//	@Param			admin	body		addAdminPayload	true	"New admin details"
//	@Success		201		{object}	admins.Admin	"Admin created"
//	@Failure		400		{object}	error			"Invalid request payload"
//	@Failure		403		{object}	error			"Forbidden"
//	@Failure		409		{object}	error			"Email already registered"
//	@Failure		500		{object}	error			"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/registry [post]
func (app *application) addAdminHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageAdminRegistry, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	var payload addAdminPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	admin := &admins.Admin{
		Email: payload.Email,
		Name:  payload.Name,
	}
	if err := admin.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	ctx := r.Context()

	if err := app.store.Admins.Create(ctx, admin); err != nil {
		switch {
		case errors.Is(err, admins.ErrDuplicateEmail):
			app.conflictResponse(w, r, err)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	vars := struct {
		Name  string
		Email string
	}{
		Name:  admin.Name,
		Email: admin.Email,
	}

	status, err := app.mailer.Send(mailer.AdminInvitationTemplate, admin.Name, admin.Email, vars)
	if err != nil {
		app.logger.Errorw("error sending invitation email", "error", err)

		// roll back the registry entry if the invitation fails
		if err := app.store.Admins.Delete(ctx, admin.ID); err != nil {
			app.logger.Errorw("error rolling back admin", "error", err)
		}

		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("admin invited", "admin_id", admin.ID, "status code", status, "invited_by", getAdminFromContext(r).AdminID())

	if err := app.jsonResponse(w, http.StatusCreated, admin); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeactivateAdmin godoc
//
//	@Summary		Deactivate an admin
//	@Description	Removes moderation capability immediately. Outstanding tokens stop working on the next request; approvals already made stay attributed.
//	@Tags			Registry
//	@Produce		json
//	@Param			adminID	path		int					true	"Admin ID"
//	@Success		200		{object}	map[string]string	"Admin deactivated"
//	@Failure		400		{object}	error				"Invalid admin ID or self-deactivation"
//	@Failure		403		{object}	error				"Forbidden"
//	@Failure		404		{object}	error				"Admin not found"
//	@Failure		500		{object}	error				"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/registry/{adminID} [delete]
func (app *application) deactivateAdminHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageAdminRegistry, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	adminID, err := strconv.ParseInt(chi.URLParam(r, "adminID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid admin ID"))
		return
	}

	if adminID == getAdminFromContext(r).AdminID() {
		app.badRequestResponse(w, r, errors.New("cannot deactivate your own account"))
		return
	}

	if err := app.store.Admins.Deactivate(r.Context(), adminID); err != nil {
		switch {
		case errors.Is(err, admins.ErrAdminNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Infow("admin deactivated", "admin_id", adminID, "deactivated_by", getAdminFromContext(r).AdminID())

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "admin deactivated"})
}
