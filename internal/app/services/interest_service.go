package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// interestCatalog is the slice of the interest repository InterestService needs.
type interestCatalog interface {
	GetAll(ctx context.Context) ([]models.Interest, error)
	GetByName(ctx context.Context, name string) (*models.Interest, error)
	Create(ctx context.Context, interest *models.Interest) error
	Delete(ctx context.Context, id string) error
}

// InterestService curates the global interest catalog
type InterestService struct {
	interests interestCatalog
}

// NewInterestService creates a new InterestService
func NewInterestService(interests interestCatalog) *InterestService {
	return &InterestService{interests: interests}
}

// ListInterests retrieves the catalog
func (s *InterestService) ListInterests(ctx context.Context) ([]models.Interest, error) {
	return s.interests.GetAll(ctx)
}

// CreateInterest adds a tag to the catalog. Re-adding an existing name is
// idempotent and returns the existing entry.
func (s *InterestService) CreateInterest(ctx context.Context, name string) (*models.Interest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("interest name cannot be empty")
	}

	existing, err := s.interests.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrInterestNotFound) {
		return nil, err
	}

	interest := &models.Interest{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.interests.Create(ctx, interest); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return s.interests.GetByName(ctx, name)
		}
		return nil, err
	}
	return interest, nil
}

// DeleteInterest removes a tag from the catalog. Students and teams that
// already reference the name keep it; the tag just stops being offered.
func (s *InterestService) DeleteInterest(ctx context.Context, id string) error {
	return s.interests.Delete(ctx, id)
}
