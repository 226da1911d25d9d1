package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// eventStore is the slice of the event repository EventService needs.
type eventStore interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	SetInterest(ctx context.Context, eventID, studentID string, interested bool) error
	ListInterestedStudents(ctx context.Context, eventID string) ([]models.Student, error)
}

// broadcaster fans a notification out to every student inbox.
type broadcaster interface {
	CreateForAllStudents(ctx context.Context, title, message string, notifType models.NotificationType, relatedID string) error
}

// EventService handles event announcements and interest polling
type EventService struct {
	events        eventStore
	students      studentChecker
	notifications broadcaster
}

// NewEventService creates a new EventService
func NewEventService(events eventStore, students studentChecker, notifications broadcaster) *EventService {
	return &EventService{events: events, students: students, notifications: notifications}
}

// ListEvents retrieves every event with its interest rolls
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.GetAll(ctx)
}

// CreateEvent announces an event and notifies every student. The
// broadcast is best effort; a notification failure never loses the event.
func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:                    uuid.NewString(),
		Name:                  req.Name,
		Description:           req.Description,
		Date:                  req.Date,
		Category:              req.Category,
		RequiredStudents:      req.RequiredStudents,
		CreatedAt:             time.Now().UTC(),
		InterestedStudents:    []string{},
		NotInterestedStudents: []string{},
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	err := s.notifications.CreateForAllStudents(ctx,
		"New event: "+event.Name,
		fmt.Sprintf("%s on %s. Interested?", event.Name, event.Date),
		models.NotificationTypeEvent, event.ID)
	if err != nil {
		log.Warn().Err(err).Str("eventId", event.ID).Msg("Failed to broadcast event notification")
	}
	return event, nil
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

// SetInterest records a student's stance. Re-submitting moves the student
// between the interested and not-interested sets; they never hold both.
func (s *EventService) SetInterest(ctx context.Context, req dto.EventInterestRequest) error {
	if _, err := s.events.GetByID(ctx, req.EventID); err != nil {
		return err
	}
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return err
	}
	if req.Interested == nil {
		return apperrors.ErrBadRequest
	}
	return s.events.SetInterest(ctx, req.EventID, req.StudentID, *req.Interested)
}

// InterestedStudents lists who signed up for an event against its capacity
func (s *EventService) InterestedStudents(ctx context.Context, eventID string) (*dto.InterestedStudentsResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	students, err := s.events.ListInterestedStudents(ctx, eventID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StudentSummary, 0, len(students))
	for _, student := range students {
		summaries = append(summaries, dto.StudentSummary{
			ID:     student.ID,
			Name:   student.Name,
			Branch: student.Branch,
			Year:   student.Year,
		})
	}
	return &dto.InterestedStudentsResponse{
		EventID:          event.ID,
		EventName:        event.Name,
		RequiredStudents: event.RequiredStudents,
		InterestedCount:  len(summaries),
		Students:         summaries,
	}, nil
}
