package handlers

import (
	"net/http"

	"muzac-backend/application/ports"
	"muzac-backend/application/services"
	"muzac-backend/domain/calendar"
	"muzac-backend/interfaces/http/rest/middleware"
	"muzac-backend/pkg/common"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxRenderBodyBytes = 1 << 20

// VideoHandler handles timelapse video rendering endpoints.
type VideoHandler struct {
	video  *services.VideoService
	logger *zap.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(video *services.VideoService, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		video:  video,
		logger: logger,
	}
}

// RenderRequest represents the request body for starting a render
type RenderRequest struct {
	Images          []calendar.DailyImage `json:"images" validate:"required,min=1"`
	Language        string                `json:"language" validate:"omitempty,oneof=tr en"`
	BackgroundColor string                `json:"backgroundColor"`
	TransitionType  string                `json:"transitionType"`
	ImageDuration   float64               `json:"imageDuration"`
}

// RenderResponse is returned when a render has been accepted.
type RenderResponse struct {
	RenderID   string `json:"renderId"`
	BucketName string `json:"bucketName"`
	OutName    string `json:"outName"`
	Message    string `json:"message"`
}

// StatusResponse reports render progress. OutputFile is null until the
// render completes.
type StatusResponse struct {
	Done            bool    `json:"done"`
	OverallProgress float64 `json:"overallProgress"`
	OutputFile      *string `json:"outputFile"`
}

// Render handles POST /video/render
func (h *VideoHandler) Render(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req RenderRequest
	if err := common.ParseJSONBody(r, &req, maxRenderBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "No images provided")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "No images provided")
		return
	}

	result, err := h.video.StartRender(r.Context(), user.Sub, ports.RenderSpec{
		Images:          req.Images,
		Language:        req.Language,
		BackgroundColor: req.BackgroundColor,
		TransitionType:  req.TransitionType,
		ImageDuration:   req.ImageDuration,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			common.RespondError(w, http.StatusBadRequest, apperrors.GetAppError(err).Message)
			return
		}
		h.logger.Error("Failed to start render",
			zap.String("userSub", user.Sub),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Failed to render video")
		return
	}

	common.RespondJSON(w, http.StatusOK, RenderResponse{
		RenderID:   result.RenderID,
		BucketName: result.BucketName,
		OutName:    result.OutName,
		Message:    "Video rendering started",
	})
}

// Status handles GET /video/status/{renderID}
func (h *VideoHandler) Status(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFrom(r.Context()); !ok {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	renderID := chi.URLParam(r, "renderID")
	if renderID == "" {
		common.RespondError(w, http.StatusBadRequest, "Render ID required")
		return
	}
	outName := r.URL.Query().Get("outName")

	progress, err := h.video.Status(r.Context(), renderID, outName)
	if err != nil {
		h.logger.Error("Failed to check render status",
			zap.String("renderId", renderID),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Failed to check render status")
		return
	}

	resp := StatusResponse{
		Done:            progress.Done,
		OverallProgress: progress.OverallProgress,
	}
	if progress.OutputFile != "" {
		resp.OutputFile = &progress.OutputFile
	}
	common.RespondJSON(w, http.StatusOK, resp)
}
