package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/filestorage"
)

// photoStore is the slice of the photo repository PhotoService needs.
type photoStore interface {
	GetAll(ctx context.Context) ([]models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id string) (string, error)
	ToggleLike(ctx context.Context, photoID, studentID string) (bool, int64, error)
}

// PhotoService handles the shared photo feed
type PhotoService struct {
	photos  photoStore
	storage *filestorage.LocalStorage
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(photos photoStore, storage *filestorage.LocalStorage) *PhotoService {
	return &PhotoService{photos: photos, storage: storage}
}

// ListPhotos retrieves the feed, newest first
func (s *PhotoService) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	return s.photos.GetAll(ctx)
}

// AddPhoto adds a feed entry. The image comes either as an uploaded file
// or as an external URL; the file wins when both are present.
func (s *PhotoService) AddPhoto(ctx context.Context, req dto.CreatePhotoRequest, file *multipart.FileHeader) (*models.Photo, error) {
	url := req.URL
	if file != nil {
		stored, err := s.storage.Save(file)
		if err != nil {
			return nil, err
		}
		url = stored
	}
	if url == "" {
		return nil, apperrors.NewBadRequestError("either a photo file or a url is required")
	}

	photo := &models.Photo{
		ID:          uuid.NewString(),
		EventName:   req.EventName,
		Description: req.Description,
		URL:         url,
		CreatedAt:   time.Now().UTC(),
		LikedBy:     []string{},
	}
	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// DeletePhoto removes a feed entry and reclaims the stored file if the
// image was uploaded rather than linked
func (s *PhotoService) DeletePhoto(ctx context.Context, id string) error {
	url, err := s.photos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(url); err != nil {
		log.Warn().Err(err).Str("photoId", id).Msg("Failed to remove stored photo file")
	}
	return nil
}

// ToggleLike flips a student's like on a photo
func (s *PhotoService) ToggleLike(ctx context.Context, photoID, studentID string) (*dto.PhotoLikeResponse, error) {
	liked, likes, err := s.photos.ToggleLike(ctx, photoID, studentID)
	if err != nil {
		return nil, err
	}

	message := "Photo unliked"
	if liked {
		message = "Photo liked"
	}
	return &dto.PhotoLikeResponse{
		Message: message,
		Liked:   liked,
		Likes:   int(likes),
	}, nil
}
