package handlers

import (
	"net/http"

	"muzac-backend/application/services"
	"muzac-backend/domain/calendar"
	"muzac-backend/interfaces/http/rest/middleware"
	"muzac-backend/pkg/common"
	apperrors "muzac-backend/pkg/errors"

	"go.uber.org/zap"
)

// Base64 inflates the payload by a third; leave room for a large phone photo.
const maxUploadBodyBytes = 15 << 20

// ImagesHandler handles the daily photo calendar endpoints.
type ImagesHandler struct {
	images *services.ImageService
	logger *zap.Logger
}

// NewImagesHandler creates a new images handler
func NewImagesHandler(images *services.ImageService, logger *zap.Logger) *ImagesHandler {
	return &ImagesHandler{
		images: images,
		logger: logger,
	}
}

// UploadRequest represents the request body for uploading a photo
type UploadRequest struct {
	ImageData string `json:"imageData" validate:"required"`
}

// UploadResponse reports the calendar date the photo was stored under.
type UploadResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

// ListImagesResponse wraps the calendar listing.
type ListImagesResponse struct {
	Images []calendar.DailyImage `json:"images"`
}

// Upload handles POST /upload
func (h *ImagesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := common.ParseJSONBody(r, &req, maxUploadBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ImageData == "" {
		common.RespondMessage(w, http.StatusBadRequest, "imageData is required")
		return
	}

	date, err := h.images.Upload(r.Context(), h.identity(r), req.ImageData)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			common.RespondMessage(w, appErr.HTTPStatus, appErr.Message)
			return
		}
		common.RespondMessage(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	common.RespondJSON(w, http.StatusOK, UploadResponse{
		Message: "Image uploaded successfully",
		Date:    date,
	})
}

// List handles GET /images
func (h *ImagesHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.images.List(r.Context(), h.identity(r))
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			common.RespondError(w, appErr.HTTPStatus, appErr.Message)
			return
		}
		common.RespondError(w, http.StatusInternalServerError, "Failed to load images")
		return
	}

	common.RespondJSON(w, http.StatusOK, ListImagesResponse{Images: images})
}

// identity resolves the storage namespace for the request: the authenticated
// user's email, or empty for the shared namespace.
func (h *ImagesHandler) identity(r *http.Request) string {
	if user, ok := middleware.UserFrom(r.Context()); ok {
		return user.Email
	}
	return ""
}
