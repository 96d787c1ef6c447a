package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"muzac-backend/domain/calendar"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImageService_Upload_WritesTodaysKey(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	payload := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	date, err := svc.Upload(ctx, "u@e.com", payload)

	require.NoError(t, err)
	assert.Equal(t, utils.TodayUTC(), date)
	assert.Equal(t, []byte("jpeg-bytes"), store.objects[calendar.ObjectKey("u@e.com", date)])
}

func TestImageService_Upload_SameDayOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	first := base64.StdEncoding.EncodeToString([]byte("first"))
	second := base64.StdEncoding.EncodeToString([]byte("second"))

	_, err := svc.Upload(ctx, "u@e.com", first)
	require.NoError(t, err)
	date, err := svc.Upload(ctx, "u@e.com", second)
	require.NoError(t, err)

	// Exactly one object for the day, holding the second upload.
	require.Len(t, store.objects, 1)
	assert.Equal(t, []byte("second"), store.objects[calendar.ObjectKey("u@e.com", date)])

	images, err := svc.List(ctx, "u@e.com")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, date, images[0].Date)
}

func TestImageService_Upload_AnonymousGoesToShared(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	payload := base64.StdEncoding.EncodeToString([]byte("x"))
	date, err := svc.Upload(ctx, "", payload)

	require.NoError(t, err)
	_, ok := store.objects[calendar.ObjectKey(calendar.SharedIdentity, date)]
	assert.True(t, ok)
}

func TestImageService_Upload_DataURLPayload(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("pic"))
	date, err := svc.Upload(ctx, "u@e.com", payload)

	require.NoError(t, err)
	assert.Equal(t, []byte("pic"), store.objects[calendar.ObjectKey("u@e.com", date)])
}

func TestImageService_Upload_RejectsBadBase64(t *testing.T) {
	ctx := context.Background()
	svc := NewImageService(newFakeObjectStore(), nopMetrics{}, zap.NewNop())

	_, err := svc.Upload(ctx, "u@e.com", "%%%not-base64%%%")

	assert.True(t, apperrors.IsValidation(err))
}

func TestImageService_Upload_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	store.putErr = errors.New("s3 down")
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	_, err := svc.Upload(ctx, "u@e.com", base64.StdEncoding.EncodeToString([]byte("x")))

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Upload failed", appErr.Message)
}

func TestImageService_List_NewestFirstSkippingMarker(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	store.objects["daily-images/u@e.com/"] = nil
	store.objects["daily-images/u@e.com/2024-01-01.jpg"] = []byte("a")
	store.objects["daily-images/u@e.com/2024-02-01.jpg"] = []byte("b")
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	images, err := svc.List(ctx, "u@e.com")

	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "2024-02-01", images[0].Date)
	assert.Equal(t, "2024-01-01", images[1].Date)
	assert.Contains(t, images[0].URL, "daily-images/u@e.com/2024-02-01.jpg")
}

func TestImageService_List_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	store.listErr = errors.New("s3 down")
	svc := NewImageService(store, nopMetrics{}, zap.NewNop())

	_, err := svc.List(ctx, "u@e.com")

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Failed to load images", appErr.Message)
}
