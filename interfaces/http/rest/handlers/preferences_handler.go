package handlers

import (
	"net/http"

	"muzac-backend/application/services"
	"muzac-backend/domain/preferences"
	"muzac-backend/interfaces/http/rest/middleware"
	"muzac-backend/pkg/common"
	apperrors "muzac-backend/pkg/errors"

	"go.uber.org/zap"
)

const maxPreferencesBodyBytes = 1 << 12

// PreferencesHandler handles the per-user preference endpoints.
type PreferencesHandler struct {
	prefs  *services.PreferenceService
	logger *zap.Logger
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(prefs *services.PreferenceService, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		prefs:  prefs,
		logger: logger,
	}
}

// UpdatePreferencesRequest represents the request body for updating preferences
type UpdatePreferencesRequest struct {
	Language string `json:"language" validate:"required,oneof=tr en"`
}

// LanguageResponse carries the user's UI language.
type LanguageResponse struct {
	Language preferences.Language `json:"language"`
}

// Get handles GET /preferences
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	language, err := h.prefs.GetLanguage(r.Context(), user.Sub)
	if err != nil {
		h.logger.Error("Failed to load preferences",
			zap.String("userSub", user.Sub),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	common.RespondJSON(w, http.StatusOK, LanguageResponse{Language: language})
}

// Update handles PUT /preferences
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdatePreferencesRequest
	if err := common.ParseJSONBody(r, &req, maxPreferencesBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid language")
		return
	}

	err := h.prefs.SetLanguage(r.Context(), user.Sub, preferences.Language(req.Language))
	if err != nil {
		if apperrors.IsValidation(err) {
			common.RespondError(w, http.StatusBadRequest, "Invalid language")
			return
		}
		h.logger.Error("Failed to update preferences",
			zap.String("userSub", user.Sub),
			zap.Error(err),
		)
		common.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
