package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"muzac-backend/application/ports"
	apperrors "muzac-backend/pkg/errors"

	"go.uber.org/zap"
)

// StartRenderResult identifies a render job started on the managed backend.
type StartRenderResult struct {
	RenderID   string `json:"renderId"`
	BucketName string `json:"bucketName"`
	OutName    string `json:"outName"`
}

// VideoService proxies timelapse renders to the managed rendering backend.
// StartRender is fire-and-forget; the client polls Status until done. The
// server keeps no per-poll state.
type VideoService struct {
	renderer    ports.VideoRenderer
	videos      ports.ObjectStore
	videoBucket string
	metrics     ports.MetricsPublisher
	logger      *zap.Logger
}

// NewVideoService creates a new video service
func NewVideoService(
	renderer ports.VideoRenderer,
	videos ports.ObjectStore,
	videoBucket string,
	metrics ports.MetricsPublisher,
	logger *zap.Logger,
) *VideoService {
	return &VideoService{
		renderer:    renderer,
		videos:      videos,
		videoBucket: videoBucket,
		metrics:     metrics,
		logger:      logger,
	}
}

// StartRender forwards the image list and style parameters to the renderer
// and returns the opaque job id immediately.
func (s *VideoService) StartRender(ctx context.Context, userSub string, spec ports.RenderSpec) (StartRenderResult, error) {
	if len(spec.Images) == 0 {
		return StartRenderResult{}, apperrors.NewValidationError("No images provided")
	}

	spec.OutName = fmt.Sprintf("%s/%d.mp4", userSub, time.Now().UnixMilli())

	renderID, err := s.renderer.StartRender(ctx, spec)
	if err != nil {
		s.logger.Error("Failed to start render",
			zap.String("userSub", userSub),
			zap.Error(err),
		)
		return StartRenderResult{}, apperrors.NewExternalError("Failed to render video").WithCause(err)
	}

	s.logger.Info("Render started",
		zap.String("renderID", renderID),
		zap.String("outName", spec.OutName),
		zap.Int("images", len(spec.Images)),
	)
	s.metrics.Increment(ctx, "RenderStarted")

	return StartRenderResult{
		RenderID:   renderID,
		BucketName: s.videoBucket,
		OutName:    spec.OutName,
	}, nil
}

// Status re-queries the renderer. When the backend query fails an optimistic
// done stub is substituted so a finished render whose status call is flaky can
// still be downloaded. Once done, the output object is presigned for download.
func (s *VideoService) Status(ctx context.Context, renderID, outName string) (ports.RenderProgress, error) {
	progress, err := s.renderer.Progress(ctx, renderID)
	if err != nil {
		s.logger.Error("Render progress query failed, substituting done stub",
			zap.String("renderID", renderID),
			zap.Error(err),
		)
		progress = ports.RenderProgress{
			Done:            true,
			OverallProgress: 1,
			OutputFile:      fmt.Sprintf("s3://%s/renders/%s/%s", s.videoBucket, renderID, outName),
		}
	}

	if !progress.Done {
		progress.OutputFile = ""
		return progress, nil
	}

	key := renderOutputKey(renderID, outName, progress.OutputFile)
	if key == "" {
		progress.OutputFile = ""
		return progress, nil
	}

	url, err := s.videos.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return ports.RenderProgress{}, apperrors.NewExternalError("Failed to get render status").WithCause(err)
	}
	progress.OutputFile = url
	return progress, nil
}

// renderOutputKey picks the object key for a finished render: the outName the
// client echoed back, or the s3 locator the renderer reported.
func renderOutputKey(renderID, outName, outputFile string) string {
	if outName != "" {
		return fmt.Sprintf("renders/%s/%s", renderID, outName)
	}
	if strings.HasPrefix(outputFile, "s3://") {
		rest := strings.TrimPrefix(outputFile, "s3://")
		if idx := strings.Index(rest, "/"); idx >= 0 && idx+1 < len(rest) {
			return rest[idx+1:]
		}
	}
	return ""
}
