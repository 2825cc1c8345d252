package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"yvrfountains/internal/authz"
	"yvrfountains/internal/domain/fountains"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-chi/chi/v5"
)

// uploadFountainPhoto sends a file to Cloudinary under the fountains folder
// with a deterministic-prefix public ID.
func (app *application) uploadFountainPhoto(file io.Reader, fountainID int64) (string, error) {
	publicID := fmt.Sprintf("fountain_%d_%d", fountainID, time.Now().UnixNano())

	resp, err := app.cld.Upload.Upload(
		context.Background(),
		file,
		uploader.UploadParams{
			Folder:    "fountains",
			PublicID:  publicID,
			Overwrite: api.Bool(false),
		},
	)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}

func (app *application) deletePhotoFromCloudinary(photoURL string) error {
	publicID, err := extractPublicIDFromURL(photoURL)
	if err != nil {
		return fmt.Errorf("failed to extract public ID: %w", err)
	}

	_, err = app.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo from Cloudinary: %w", err)
	}

	return nil
}

func extractPublicIDFromURL(photoURL string) (string, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	pathParts := strings.Split(parsedURL.Path, "/")
	for i, part := range pathParts {
		if part == "upload" && i+1 < len(pathParts) {
			return strings.Join(pathParts[i+1:], "/"), nil
		}
	}

	return "", errors.New("failed to extract public ID from URL")
}

// UploadFountainPhoto godoc
//
//	@Summary		Upload a fountain photo
//	@Description	Uploads a photo to Cloudinary and stores its URL on the fountain, replacing any previous photo
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			fountainID	path		int					true	"Fountain ID"
//	@Param			photo		formData	file				true	"Photo file to upload"
//	@Success		200			{object}	map[string]string	"New photo URL"
//	@Failure		400			{object}	error				"Invalid input or missing file"
//	@Failure		404			{object}	error				"Fountain not found"
//	@Failure		500			{object}	error				"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/fountains/{fountainID}/photo [post]
func (app *application) uploadFountainPhotoHandler(w http.ResponseWriter, r *http.Request) {
	if !authz.Decide(actorForRequest(r), authz.ManageFountain, authz.Resource{}).Permitted() {
		app.forbiddenResponse(w, r)
		return
	}

	fountainID, err := strconv.ParseInt(chi.URLParam(r, "fountainID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid fountain ID"))
		return
	}

	fountain, err := app.store.Fountains.GetByID(r.Context(), fountainID)
	if err != nil {
		switch {
		case errors.Is(err, fountains.ErrFountainNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.storageErrorResponse(w, r, err)
		}
		return
	}

	const maxBytes = 10 * 1024 * 1024 // 10MB
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to parse form: %w", err))
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to get photo from form: %w", err))
		return
	}
	defer file.Close()

	newPhotoURL, err := app.uploadFountainPhoto(file, fountainID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Fountains.SetPhotoURL(r.Context(), fountainID, newPhotoURL); err != nil {
		app.storageErrorResponse(w, r, err)
		return
	}

	// Old photo cleanup is best effort; a dangling asset beats a failed
	// replacement.
	if fountain.PhotoURL != nil && *fountain.PhotoURL != "" {
		if err := app.deletePhotoFromCloudinary(*fountain.PhotoURL); err != nil {
			app.logger.Errorw("error deleting previous photo", "fountain_id", fountainID, "error", err)
		}
	}

	app.logger.Infow("fountain photo updated", "fountain_id", fountainID, "admin_id", getAdminFromContext(r).AdminID())

	app.jsonResponse(w, http.StatusOK, map[string]string{"photo_url": newPhotoURL})
}
