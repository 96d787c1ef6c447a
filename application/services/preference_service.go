package services

import (
	"context"

	"muzac-backend/application/ports"
	"muzac-backend/domain/preferences"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"go.uber.org/zap"
)

// PreferenceService reads and writes the single per-user preference row.
type PreferenceService struct {
	repo   ports.PreferenceRepository
	logger *zap.Logger
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo ports.PreferenceRepository, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{
		repo:   repo,
		logger: logger,
	}
}

// GetLanguage returns the user's stored language, defaulting to Turkish when
// nothing is stored.
func (s *PreferenceService) GetLanguage(ctx context.Context, userID string) (preferences.Language, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if prefs == nil {
		return preferences.DefaultLanguage, nil
	}
	return prefs.Language, nil
}

// SetLanguage overwrites the user's language. Last write wins.
func (s *PreferenceService) SetLanguage(ctx context.Context, userID string, language preferences.Language) error {
	if !language.Valid() {
		return apperrors.NewValidationError("Invalid language")
	}

	prefs := preferences.UserPreferences{
		UserID:    userID,
		Language:  language,
		UpdatedAt: utils.NowRFC3339(),
	}
	if err := s.repo.Put(ctx, prefs); err != nil {
		s.logger.Error("Failed to store preferences",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
