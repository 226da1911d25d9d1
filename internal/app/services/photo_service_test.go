package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/filestorage"
)

func newPhotoFixture(t *testing.T) (*fakePhotos, *PhotoService) {
	t.Helper()
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	photos := newFakePhotos(&models.Photo{ID: "photo-1", EventName: "Tech Fest"})
	return photos, NewPhotoService(photos, storage)
}

func TestAddPhoto_FromURL(t *testing.T) {
	photos, svc := newPhotoFixture(t)

	photo, err := svc.AddPhoto(context.Background(), dto.CreatePhotoRequest{
		EventName:   "Annual Day",
		Description: "Stage shot",
		URL:         "https://images.example.com/annual-day.jpg",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/annual-day.jpg", photo.URL)
	assert.Empty(t, photo.LikedBy)
	assert.Contains(t, photos.byID, photo.ID)
}

func TestAddPhoto_RequiresFileOrURL(t *testing.T) {
	_, svc := newPhotoFixture(t)

	_, err := svc.AddPhoto(context.Background(), dto.CreatePhotoRequest{
		EventName: "Annual Day",
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	_, svc := newPhotoFixture(t)

	liked, err := svc.ToggleLike(context.Background(), "photo-1", "stu-1")
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, 1, liked.Likes)
	assert.Equal(t, "Photo liked", liked.Message)

	unliked, err := svc.ToggleLike(context.Background(), "photo-1", "stu-1")
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, 0, unliked.Likes)
	assert.Equal(t, "Photo unliked", unliked.Message)
}

func TestDeletePhoto_RemovesEntry(t *testing.T) {
	photos, svc := newPhotoFixture(t)

	require.NoError(t, svc.DeletePhoto(context.Background(), "photo-1"))
	assert.NotContains(t, photos.byID, "photo-1")

	err := svc.DeletePhoto(context.Background(), "photo-1")
	assert.ErrorIs(t, err, apperrors.ErrPhotoNotFound)
}

func TestToggleLike_UnknownPhoto(t *testing.T) {
	_, svc := newPhotoFixture(t)

	_, err := svc.ToggleLike(context.Background(), "photo-missing", "stu-1")

	assert.ErrorIs(t, err, apperrors.ErrPhotoNotFound)
}
