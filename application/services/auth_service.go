package services

import (
	"context"
	"errors"

	"muzac-backend/application/ports"
	apperrors "muzac-backend/pkg/errors"

	"go.uber.org/zap"
)

// AuthService is a stateless pass-through to the managed identity provider.
// It reshapes provider failures into the service's own error taxonomy and
// holds no session state.
type AuthService struct {
	identity ports.IdentityProvider
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(identity ports.IdentityProvider, logger *zap.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		logger:   logger,
	}
}

// Login exchanges credentials for an access token. Bad credentials surface as
// an unauthorized error with no token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.identity.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			return "", apperrors.NewUnauthorizedError("Authentication failed")
		}
		if appErr := apperrors.GetAppError(err); appErr != nil {
			return "", appErr
		}
		return "", apperrors.NewValidationError("Login failed").WithCause(err)
	}
	if token == "" {
		return "", apperrors.NewUnauthorizedError("Authentication failed")
	}
	return token, nil
}

// Register signs up a new user. When the email is already registered the
// confirmation code is re-sent instead, so an unverified user can retry
// registration and still receive a code.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	err := s.identity.Register(ctx, email, password)
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrUserAlreadyExists) {
		s.logger.Info("Registration for existing user, resending confirmation code",
			zap.String("email", email),
		)
		return s.wrapProviderError(s.identity.ResendConfirmationCode(ctx, email), "Registration failed")
	}
	return s.wrapProviderError(err, "Registration failed")
}

// ConfirmRegistration confirms a registration with the emailed code.
func (s *AuthService) ConfirmRegistration(ctx context.Context, email, code string) error {
	return s.wrapProviderError(s.identity.ConfirmSignUp(ctx, email, code), "Verification failed")
}

// ResendConfirmationCode re-sends the registration confirmation code.
func (s *AuthService) ResendConfirmationCode(ctx context.Context, email string) error {
	return s.wrapProviderError(s.identity.ResendConfirmationCode(ctx, email), "Failed to resend code")
}

// VerifyAccessToken resolves a bearer token to its user via the provider.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (ports.User, error) {
	user, err := s.identity.GetUser(ctx, token)
	if err != nil {
		return ports.User{}, apperrors.NewUnauthorizedError("Token verification failed").WithCause(err)
	}
	return user, nil
}

// wrapProviderError keeps provider messages when the adapter produced one and
// falls back to a generic message otherwise.
func (s *AuthService) wrapProviderError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr
	}
	return apperrors.NewValidationError(fallback).WithCause(err)
}
