package handlers

import (
	"net/http"

	"muzac-backend/application/services"
	"muzac-backend/interfaces/http/rest/middleware"
	"muzac-backend/pkg/common"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"go.uber.org/zap"
)

const maxAuthBodyBytes = 1 << 16

// AuthHandler handles the identity pass-through endpoints.
type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the provider-issued access token.
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		Email string `json:"email"`
	} `json:"user"`
}

// RegisterRequest represents the request body for registering
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ConfirmRequest represents the request body for confirming a registration
type ConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// ResendRequest represents the request body for resending the code
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.ParseJSONBody(r, &req, maxAuthBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(w, err, "Login failed")
		return
	}

	resp := LoginResponse{Token: token}
	resp.User.Email = req.Email
	common.RespondJSON(w, http.StatusOK, resp)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := common.ParseJSONBody(r, &req, maxAuthBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.Register(r.Context(), req.Email, req.Password); err != nil {
		h.respondAuthError(w, err, "Registration failed")
		return
	}

	common.RespondMessage(w, http.StatusOK, "Registration successful. Please check your email.")
}

// Confirm handles POST /auth/confirm
func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := common.ParseJSONBody(r, &req, maxAuthBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.ConfirmRegistration(r.Context(), req.Email, req.Code); err != nil {
		h.respondAuthError(w, err, "Verification failed")
		return
	}

	common.RespondMessage(w, http.StatusOK, "Email verified successfully. You can now login.")
}

// Resend handles POST /auth/resend
func (h *AuthHandler) Resend(w http.ResponseWriter, r *http.Request) {
	var req ResendRequest
	if err := common.ParseJSONBody(r, &req, maxAuthBodyBytes); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.ResendConfirmationCode(r.Context(), req.Email); err != nil {
		h.respondAuthError(w, err, "Failed to resend code")
		return
	}

	common.RespondMessage(w, http.StatusOK, "Verification code resent. Please check your email.")
}

// Verify handles GET /auth/verify. Verification happens here rather than in
// the auth middleware so the endpoint can report why the token was rejected.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		common.RespondMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.auth.VerifyAccessToken(r.Context(), token)
	if err != nil {
		common.RespondMessage(w, http.StatusUnauthorized, "Token verification failed")
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// respondAuthError maps service errors to the auth endpoints' message
// envelope.
func (h *AuthHandler) respondAuthError(w http.ResponseWriter, err error, fallback string) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		common.RespondMessage(w, appErr.HTTPStatus, appErr.Message)
		return
	}
	h.logger.Error("Unexpected auth failure", zap.Error(err))
	common.RespondMessage(w, http.StatusBadRequest, fallback)
}
