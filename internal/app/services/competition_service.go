package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
)

// competitionStore is the slice of the competition repository CompetitionService needs.
type competitionStore interface {
	GetAll(ctx context.Context) ([]models.Competition, error)
	Create(ctx context.Context, c *models.Competition) error
	Delete(ctx context.Context, id string) error
}

// CompetitionService handles competition announcements
type CompetitionService struct {
	competitions  competitionStore
	notifications broadcaster
}

// NewCompetitionService creates a new CompetitionService
func NewCompetitionService(competitions competitionStore, notifications broadcaster) *CompetitionService {
	return &CompetitionService{competitions: competitions, notifications: notifications}
}

// ListCompetitions retrieves every competition, newest first
func (s *CompetitionService) ListCompetitions(ctx context.Context) ([]models.Competition, error) {
	return s.competitions.GetAll(ctx)
}

// CreateCompetition announces a competition and notifies every student
func (s *CompetitionService) CreateCompetition(ctx context.Context, req dto.CreateCompetitionRequest) (*models.Competition, error) {
	competition := &models.Competition{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Rules:          req.Rules,
		EventDate:      req.EventDate,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.competitions.Create(ctx, competition); err != nil {
		return nil, err
	}

	err := s.notifications.CreateForAllStudents(ctx,
		"New competition: "+competition.Name,
		competition.Name+" is open. Skills: "+competition.SkillsRequired,
		models.NotificationTypeCompetition, competition.ID)
	if err != nil {
		log.Warn().Err(err).Str("competitionId", competition.ID).Msg("Failed to broadcast competition notification")
	}
	return competition, nil
}

// DeleteCompetition removes a competition
func (s *CompetitionService) DeleteCompetition(ctx context.Context, id string) error {
	return s.competitions.Delete(ctx, id)
}
