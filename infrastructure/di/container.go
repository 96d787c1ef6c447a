package di

import (
	"muzac-backend/application/services"
	"muzac-backend/infrastructure/config"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *zap.Logger
	AuthService       *services.AuthService
	ImageService      *services.ImageService
	PreferenceService *services.PreferenceService
	VideoService      *services.VideoService
	FamilyService     *services.FamilyService
}
