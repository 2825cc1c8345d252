package main

import (
	"errors"
	"net/http"
	"strconv"

	"yvrfountains/internal/authz"
	"yvrfountains/internal/domain/fountains"

	"github.com/go-chi/chi/v5"
)

// ListFountains godoc
//
//	@Summary		List fountains
//	@Description	Returns every active fountain with its rating aggregates, sorted by name
//	@Tags			Fountains
//	@Produce		json
//	@Success		200	{array}		fountains.Overview
//	@Failure		500	{object}	error	"Internal server error"
//	@Router			/fountains [get]
func (app *application) listFountainsHandler(w http.ResponseWriter, r *http.Request) {
	overviews, err := app.store.Fountains.ListOverview(r.Context())
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, overviews); err != nil {
		app.internalServerError(w, r, err)
	}
}

// FountainsGeoJSON godoc
//
//	@Summary		Fountain map layer
//	@Description	Returns active fountains as a GeoJSON FeatureCollection for the map client
//	@Tags			Fountains
//	@Produce		json
//	@Success		200	{object}	fountains.FeatureCollection
//	@Failure		500	{object}	error	"Internal server error"
//	@Router			/fountains/geojson [get]
func (app *application) fountainsGeoJSONHandler(w http.ResponseWriter, r *http.Request) {
	overviews, err := app.store.Fountains.ListOverview(r.Context())
	if err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	// Bare FeatureCollection, no data envelope: map clients feed this
	// straight into the layer.
	if err := writeJSON(w, http.StatusOK, fountains.GeoJSON(overviews)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetFountain godoc
//
//	@Summary		Get a fountain
//	@Description	Returns one active fountain with its rating aggregates
//	@Tags			Fountains
//	@Produce		json
//	@Param			fountainID	path		int	true	"Fountain ID"
//	@Success		200			{object}	fountains.Overview
//	@Failure		400			{object}	error	"Invalid fountain ID"
//	@Failure		404			{object}	error	"Fountain not found"
//	@Failure		500			{object}	error	"Internal server error"
//	@Router			/fountains/{fountainID} [get]
func (app *application) getFountainHandler(w http.ResponseWriter, r *http.Request) {
	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	overview, err := app.store.Fountains.GetOverviewByID(r.Context(), fountainID)
	if err != nil {
		switch {
		case errors.Is(err, fountains.ErrFountainNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, overview); err != nil {
		app.internalServerError(w, r, err)
	}
}

type createFountainPayload struct {
	CityID               int64   `json:"city_id" validate:"required"`
	Name                 string  `json:"name" validate:"required,max=200"`
	Neighbourhood        *string `json:"neighbourhood,omitempty" validate:"omitempty,max=100"`
	LocationDescription  *string `json:"location_description,omitempty" validate:"omitempty,max=500"`
	Lat                  float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon                  float64 `json:"lon" validate:"required,min=-180,max=180"`
	OperationalStatus    string  `json:"operational_status,omitempty" validate:"omitempty,oneof=operational seasonal closed unknown"`
	SeasonNote           *string `json:"season_note,omitempty" validate:"omitempty,max=300"`
	PetFriendly          string  `json:"pet_friendly,omitempty" validate:"omitempty,oneof=yes no unknown"`
	BottleFiller         *bool   `json:"bottle_filler,omitempty"`
	WheelchairAccessible *bool   `json:"wheelchair_accessible,omitempty"`
}

// CreateFountain godoc
//
//	@Summary		Create a fountain
//	@Description	Registers a fountain that is not part of any imported dataset
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			fountain	body		createFountainPayload	true	"Fountain details"
//	@Success		201			{object}	fountains.Fountain		"Fountain created"
//	@Failure		400			{object}	error					"Invalid request payload"
//	@Failure		401			{object}	error					"Unauthorized"
//	@Failure		500			{object}	error					"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/fountains [post]
func (app *application) createFountainHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageFountain, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	var payload createFountainPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.OperationalStatus == "" {
		payload.OperationalStatus = fountains.StatusUnknown
	}
	if payload.PetFriendly == "" {
		payload.PetFriendly = fountains.PetFriendlyUnknown
	}

	fountain := &fountains.Fountain{
		CityID:               payload.CityID,
		Name:                 payload.Name,
		Neighbourhood:        payload.Neighbourhood,
		LocationDescription:  payload.LocationDescription,
		Lat:                  payload.Lat,
		Lon:                  payload.Lon,
		OperationalStatus:    payload.OperationalStatus,
		SeasonNote:           payload.SeasonNote,
		PetFriendly:          payload.PetFriendly,
		BottleFiller:         payload.BottleFiller,
		WheelchairAccessible: payload.WheelchairAccessible,
		Active:               true,
	}

	if err := app.store.Fountains.Create(r.Context(), fountain); err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	app.logger.Infow("fountain created", "fountain_id", fountain.ID, "admin_id", getAdminFromContext(r).AdminID())

	if err := app.jsonResponse(w, http.StatusCreated, fountain); err != nil {
		app.internalServerError(w, r, err)
	}
}

type updateFountainPayload struct {
	Name                 *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Neighbourhood        *string  `json:"neighbourhood,omitempty" validate:"omitempty,max=100"`
	LocationDescription  *string  `json:"location_description,omitempty" validate:"omitempty,max=500"`
	Lat                  *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon                  *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	OperationalStatus    *string  `json:"operational_status,omitempty" validate:"omitempty,oneof=operational seasonal closed unknown"`
	SeasonNote           *string  `json:"season_note,omitempty" validate:"omitempty,max=300"`
	PetFriendly          *string  `json:"pet_friendly,omitempty" validate:"omitempty,oneof=yes no unknown"`
	BottleFiller         *bool    `json:"bottle_filler,omitempty"`
	WheelchairAccessible *bool    `json:"wheelchair_accessible,omitempty"`
	Active               *bool    `json:"active,omitempty"`
}

// updates translates the payload into column assignments. Only known
// columns ever reach the store; client keys never name columns directly.
func (p *updateFountainPayload) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Neighbourhood != nil {
		updates["neighbourhood"] = *p.Neighbourhood
	}
	if p.LocationDescription != nil {
		updates["location_description"] = *p.LocationDescription
	}
	if p.Lat != nil {
		updates["lat"] = *p.Lat
	}
	if p.Lon != nil {
		updates["lon"] = *p.Lon
	}
	if p.OperationalStatus != nil {
		updates["operational_status"] = *p.OperationalStatus
	}
	if p.SeasonNote != nil {
		updates["season_note"] = *p.SeasonNote
	}
	if p.PetFriendly != nil {
		updates["pet_friendly"] = *p.PetFriendly
	}
	if p.BottleFiller != nil {
		updates["bottle_filler"] = *p.BottleFiller
	}
	if p.WheelchairAccessible != nil {
		updates["wheelchair_accessible"] = *p.WheelchairAccessible
	}
	if p.Active != nil {
		updates["active"] = *p.Active
	}
	return updates
}

// UpdateFountain godoc
//
//	@Summary		Update fountain information
//	@Description	Applies a partial update. Lat and lon must be sent together so the map point stays consistent.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			fountainID	path		int						true	"Fountain ID"
//	@Param			updateData	body		updateFountainPayload	true	"Fields to update"
//	@Success		200			{object}	map[string]string		"Fountain updated"
//	@Failure		400			{object}	error					"Invalid request payload"
//	@Failure		404			{object}	error					"Fountain not found"
//	@Failure		500			{object}	error					"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/fountains/{fountainID} [patch]
func (app *application) updateFountainHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageFountain, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	var payload updateFountainPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := payload.updates()
	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}
	if (payload.Lat == nil) != (payload.Lon == nil) {
		app.badRequestResponse(w, r, errors.New("lat and lon must be updated together"))
		return
	}

	if err := app.store.Fountains.Update(r.Context(), fountainID, updates); err != nil {
		switch {
		case errors.Is(err, fountains.ErrFountainNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Infow("fountain updated", "fountain_id", fountainID, "admin_id", getAdminFromContext(r).AdminID())

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "fountain updated"})
}

// DeactivateFountain godoc
//
//	@Summary		Deactivate a fountain
//	@Description	Soft-deletes a fountain. It disappears from public reads; its reviews stay in place.
//	@Tags			Admin
//	@Produce		json
//	@Param			fountainID	path		int					true	"Fountain ID"
//	@Success		200			{object}	map[string]string	"Fountain deactivated"
//	@Failure		400			{object}	error				"Invalid fountain ID"
//	@Failure		404			{object}	error				"Fountain not found"
//	@Failure		500			{object}	error				"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/fountains/{fountainID} [delete]
func (app *application) deactivateFountainHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageFountain, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	if err := app.store.Fountains.SetActive(r.Context(), fountainID, false); err != nil {
		switch {
		case errors.Is(err, fountains.ErrFountainNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Infow("fountain deactivated", "fountain_id", fountainID, "admin_id", getAdminFromContext(r).AdminID())

	app.jsonResponse(w, http.StatusOK, map[string]string{"message": "fountain deactivated"})
}
