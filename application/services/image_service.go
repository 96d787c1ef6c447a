package services

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"muzac-backend/application/ports"
	"muzac-backend/domain/calendar"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"go.uber.org/zap"
)

const (
	// uploadTimeout bounds the single put against the object store.
	uploadTimeout = 10 * time.Second

	// presignExpiry is how long listed image URLs stay readable.
	presignExpiry = time.Hour
)

// ImageService implements the one-photo-per-day calendar on top of the object
// store. Images are keyed by identity and UTC date; a same-day re-upload
// overwrites, last write wins.
type ImageService struct {
	store   ports.ObjectStore
	metrics ports.MetricsPublisher
	logger  *zap.Logger
}

// NewImageService creates a new image service
func NewImageService(store ports.ObjectStore, metrics ports.MetricsPublisher, logger *zap.Logger) *ImageService {
	return &ImageService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Upload decodes the base64 payload and writes it to today's key for the
// identity, returning the date written. An empty identity goes to the shared
// namespace.
func (s *ImageService) Upload(ctx context.Context, identity, imageData string) (string, error) {
	if identity == "" {
		identity = calendar.SharedIdentity
	}

	data, err := decodeImage(imageData)
	if err != nil {
		return "", apperrors.NewValidationError("Invalid image data").WithCause(err)
	}

	date := utils.TodayUTC()
	key := calendar.ObjectKey(identity, date)

	putCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	if err := s.store.Put(putCtx, key, data, "image/jpeg"); err != nil {
		s.logger.Error("Image upload failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", apperrors.NewExternalError("Upload failed").WithCause(err)
	}

	s.logger.Info("Image uploaded",
		zap.String("identity", identity),
		zap.String("date", date),
		zap.Int("bytes", len(data)),
	)
	s.metrics.Increment(ctx, "ImageUploaded")

	return date, nil
}

// List returns one entry per calendar day with a stored photo for the
// identity, newest first, each with a time-limited read URL.
func (s *ImageService) List(ctx context.Context, identity string) ([]calendar.DailyImage, error) {
	if identity == "" {
		identity = calendar.SharedIdentity
	}

	keys, err := s.store.ListKeys(ctx, calendar.IdentityPrefix(identity))
	if err != nil {
		s.logger.Error("Failed to list images",
			zap.String("identity", identity),
			zap.Error(err),
		)
		return nil, apperrors.NewExternalError("Failed to load images").WithCause(err)
	}

	images := make([]calendar.DailyImage, 0, len(keys))
	for _, key := range keys {
		date, ok := calendar.DateFromKey(key, identity)
		if !ok {
			continue
		}
		url, err := s.store.PresignGet(ctx, key, presignExpiry)
		if err != nil {
			return nil, apperrors.NewExternalError("Failed to load images").WithCause(err)
		}
		images = append(images, calendar.DailyImage{Date: date, URL: url})
	}

	calendar.SortNewestFirst(images)
	return images, nil
}

// decodeImage accepts raw base64 or a data URL payload.
func decodeImage(imageData string) ([]byte, error) {
	if idx := strings.Index(imageData, ";base64,"); idx >= 0 && strings.HasPrefix(imageData, "data:") {
		imageData = imageData[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(imageData)
}
