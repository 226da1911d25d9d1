package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// messageStore is the slice of the message repository ChatService needs.
type messageStore interface {
	ListByTeam(ctx context.Context, teamID string) ([]models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, teamID, messageID string) (*models.Message, error)
	Delete(ctx context.Context, teamID, messageID string) error
}

// chatPublisher pushes a new message to connected room subscribers.
type chatPublisher interface {
	Broadcast(room string, payload interface{})
}

// ChatService handles team chat. History is served over REST; connected
// clients additionally get new messages pushed over the room socket.
type ChatService struct {
	messages  messageStore
	teams     membershipChecker
	students  studentChecker
	publisher chatPublisher
}

// NewChatService creates a new ChatService
func NewChatService(messages messageStore, teams membershipChecker, students studentChecker, publisher chatPublisher) *ChatService {
	return &ChatService{
		messages:  messages,
		teams:     teams,
		students:  students,
		publisher: publisher,
	}
}

// History retrieves a team's messages in send order
func (s *ChatService) History(ctx context.Context, teamID string) ([]models.Message, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.messages.ListByTeam(ctx, teamID)
}

// Send posts a message to a team chat. Only roster members and the leader
// may post.
func (s *ChatService) Send(ctx context.Context, teamID string, req dto.SendMessageRequest) (*models.Message, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.teams.IsMember(ctx, teamID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.ErrPermissionDenied
	}

	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, apperrors.NewBadRequestError("message cannot be empty")
	}

	message := &models.Message{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		StudentID:   req.StudentID,
		StudentName: student.Name,
		Message:     body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	s.publisher.Broadcast(teamID, message)
	return message, nil
}

// Delete removes a message from a team chat. Only the author may delete
// their own message.
func (s *ChatService) Delete(ctx context.Context, teamID, messageID, studentID string) error {
	message, err := s.messages.GetByID(ctx, teamID, messageID)
	if err != nil {
		return err
	}
	if message.StudentID != studentID {
		return apperrors.ErrPermissionDenied
	}
	return s.messages.Delete(ctx, teamID, messageID)
}
