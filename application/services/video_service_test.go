package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"muzac-backend/application/ports"
	"muzac-backend/domain/calendar"
	apperrors "muzac-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVideoService(renderer *MockVideoRenderer) *VideoService {
	return NewVideoService(renderer, newFakeObjectStore(), "videos-bucket", nopMetrics{}, zap.NewNop())
}

func TestVideoService_StartRender_RejectsEmptyImages(t *testing.T) {
	svc := newVideoService(new(MockVideoRenderer))

	_, err := svc.StartRender(context.Background(), "sub-1", ports.RenderSpec{})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "No images provided", appErr.Message)
}

func TestVideoService_StartRender_BuildsOutName(t *testing.T) {
	ctx := context.Background()
	renderer := new(MockVideoRenderer)
	svc := newVideoService(renderer)

	renderer.On("StartRender", ctx, mock.MatchedBy(func(spec ports.RenderSpec) bool {
		return strings.HasPrefix(spec.OutName, "sub-1/") && strings.HasSuffix(spec.OutName, ".mp4")
	})).Return("render-1", nil)

	result, err := svc.StartRender(ctx, "sub-1", ports.RenderSpec{
		Images: []calendar.DailyImage{{Date: "2024-01-01", URL: "https://x"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "render-1", result.RenderID)
	assert.Equal(t, "videos-bucket", result.BucketName)
	assert.True(t, strings.HasPrefix(result.OutName, "sub-1/"))
}

func TestVideoService_StartRender_RendererFailure(t *testing.T) {
	ctx := context.Background()
	renderer := new(MockVideoRenderer)
	svc := newVideoService(renderer)

	renderer.On("StartRender", ctx, mock.Anything).Return("", errors.New("invoke failed"))

	_, err := svc.StartRender(ctx, "sub-1", ports.RenderSpec{
		Images: []calendar.DailyImage{{Date: "2024-01-01"}},
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Failed to render video", appErr.Message)
}

func TestVideoService_Status_InProgress(t *testing.T) {
	ctx := context.Background()
	renderer := new(MockVideoRenderer)
	svc := newVideoService(renderer)

	renderer.On("Progress", ctx, "render-1").
		Return(ports.RenderProgress{Done: false, OverallProgress: 0.4}, nil)

	progress, err := svc.Status(ctx, "render-1", "sub-1/1.mp4")

	require.NoError(t, err)
	assert.False(t, progress.Done)
	assert.InDelta(t, 0.4, progress.OverallProgress, 1e-9)
	assert.Empty(t, progress.OutputFile)
}

func TestVideoService_Status_DonePresignsOutName(t *testing.T) {
	ctx := context.Background()
	renderer := new(MockVideoRenderer)
	svc := newVideoService(renderer)

	renderer.On("Progress", ctx, "render-1").
		Return(ports.RenderProgress{Done: true, OverallProgress: 1}, nil)

	progress, err := svc.Status(ctx, "render-1", "sub-1/1.mp4")

	require.NoError(t, err)
	assert.True(t, progress.Done)
	assert.Contains(t, progress.OutputFile, "renders/render-1/sub-1/1.mp4")
}

func TestVideoService_Status_UpstreamFailureSubstitutesDoneStub(t *testing.T) {
	ctx := context.Background()
	renderer := new(MockVideoRenderer)
	svc := newVideoService(renderer)

	renderer.On("Progress", ctx, "render-1").
		Return(ports.RenderProgress{}, errors.New("status invoke failed"))

	progress, err := svc.Status(ctx, "render-1", "sub-1/1.mp4")

	require.NoError(t, err)
	assert.True(t, progress.Done)
	assert.InDelta(t, 1.0, progress.OverallProgress, 1e-9)
	assert.Contains(t, progress.OutputFile, "renders/render-1/sub-1/1.mp4")
}

func TestVideoService_Status_FallsBackToReportedLocator(t *testing.T) {
	ctx := context.Background()
	renderer := new(MockVideoRenderer)
	svc := newVideoService(renderer)

	renderer.On("Progress", ctx, "render-1").Return(ports.RenderProgress{
		Done:            true,
		OverallProgress: 1,
		OutputFile:      "s3://videos-bucket/renders/render-1/out.mp4",
	}, nil)

	progress, err := svc.Status(ctx, "render-1", "")

	require.NoError(t, err)
	assert.Contains(t, progress.OutputFile, "renders/render-1/out.mp4")
}

func TestRenderOutputKey(t *testing.T) {
	assert.Equal(t, "renders/r1/sub/1.mp4", renderOutputKey("r1", "sub/1.mp4", ""))
	assert.Equal(t, "renders/r1/out.mp4", renderOutputKey("r1", "", "s3://bucket/renders/r1/out.mp4"))
	assert.Equal(t, "", renderOutputKey("r1", "", "not-a-locator"))
	assert.Equal(t, "", renderOutputKey("r1", "", ""))
}
