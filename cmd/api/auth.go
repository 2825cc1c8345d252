package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"yvrfountains/internal/domain/admins"
	"yvrfountains/internal/gate"

	"github.com/golang-jwt/jwt/v5"
)

type createTokenPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateToken godoc
//
//	@Summary		Admin login
//	@Description	Verifies credentials against the admin registry and issues access and refresh tokens. Wrong credentials get 401; valid credentials without registry membership get 403.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		createTokenPayload	true	"Admin credentials"
//	@Success		200			{object}	map[string]string	"Token pair"
//	@Failure		400			{object}	error				"Invalid request payload"
//	@Failure		401			{object}	error				"Authentication failed"
//	@Failure		403			{object}	error				"Authenticated but not an administrator"
//	@Failure		500			{object}	error				"Internal server error"
//	@Router			/auth/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload createTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	adminContext, err := app.gate.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, gate.ErrAuthenticationFailed):
			app.unauthorizedErrorResponse(w, r, err)
		case errors.Is(err, gate.ErrNotAuthorized):
			app.forbiddenResponse(w, r)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	accessToken, refreshToken, err := app.authenticator.GenerateTokens(adminContext.AdminID(), "admin")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Admins.SaveRefreshToken(r.Context(), adminContext.AdminID(), refreshToken); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("admin logged in", "admin_id", adminContext.AdminID())

	response := map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"admin_id":      strconv.FormatInt(adminContext.AdminID(), 10),
		"role":          "admin",
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// RefreshToken godoc
//
//	@Summary		Refresh authentication tokens
//	@Description	Validates the refresh token against the stored copy and issues a new pair. Deactivated admins cannot refresh.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		map[string]string	true	"Refresh token payload"
//	@Success		200		{object}	map[string]string	"New token pair"
//	@Failure		400		{object}	error				"Bad request"
//	@Failure		401		{object}	error				"Unauthorized"
//	@Failure		403		{object}	error				"Admin deactivated"
//	@Failure		500		{object}	error				"Internal server error"
//	@Router			/auth/refresh [post]
func (app *application) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.ValidateRefreshToken(payload.RefreshToken)
	if err != nil || !token.Valid {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("invalid refresh token"))
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("invalid claims"))
		return
	}

	subClaim, ok := claims["sub"].(float64)
	if !ok {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("invalid sub claim"))
		return
	}

	adminID := int64(subClaim)

	// GetRefreshToken only sees active admins, so a deactivated admin's
	// refresh token dies with the registry row.
	savedToken, err := app.store.Admins.GetRefreshToken(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, admins.ErrAdminNotFound) {
			app.forbiddenResponse(w, r)
			return
		}
		app.storageErrorResponse(w, r, err)
		return
	}
	if savedToken == "" || savedToken != payload.RefreshToken {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("refresh token mismatch"))
		return
	}

	accessToken, newRefreshToken, err := app.authenticator.GenerateTokens(adminID, "admin")
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Admins.SaveRefreshToken(r.Context(), adminID, newRefreshToken); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"admin_id":      strconv.FormatInt(adminID, 10),
		"role":          "admin",
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// Logout godoc
//
//	@Summary		Admin logout
//	@Description	Clears the stored refresh token; outstanding access tokens expire on their own
//	@Tags			Auth
//	@Success		204	"Logged out"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Failure		500	{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/auth/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	admin := getAdminFromContext(r)
	if !admin.Valid() {
		app.unauthorizedErrorResponse(w, r, fmt.Errorf("no admin session"))
		return
	}

	if err := app.store.Admins.DeleteRefreshToken(r.Context(), admin.AdminID()); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("admin logged out", "admin_id", admin.AdminID())

	w.WriteHeader(http.StatusNoContent)
}
