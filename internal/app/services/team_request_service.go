package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// requestStore is the slice of the request repository TeamRequestService needs.
type requestStore interface {
	GetByID(ctx context.Context, id string) (*models.TeamRequest, error)
	FindPending(ctx context.Context, teamID, studentID string) (*models.TeamRequest, error)
	Create(ctx context.Context, request *models.TeamRequest) error
	ListPendingByTeam(ctx context.Context, teamID string) ([]models.TeamRequest, error)
	ListAll(ctx context.Context) ([]models.TeamRequest, error)
	Approve(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
}

// membershipChecker answers roster questions for join submissions.
type membershipChecker interface {
	GetByID(ctx context.Context, id string) (*models.Team, error)
	IsMember(ctx context.Context, teamID, studentID string) (bool, error)
}

// notificationWriter delivers best-effort inbox entries.
type notificationWriter interface {
	Create(ctx context.Context, n *models.Notification) error
}

// TeamRequestService runs the join-request lifecycle: submit once,
// resolve once.
type TeamRequestService struct {
	requests      requestStore
	teams         membershipChecker
	students      studentChecker
	notifications notificationWriter
}

// NewTeamRequestService creates a new TeamRequestService
func NewTeamRequestService(requests requestStore, teams membershipChecker, students studentChecker, notifications notificationWriter) *TeamRequestService {
	return &TeamRequestService{
		requests:      requests,
		teams:         teams,
		students:      students,
		notifications: notifications,
	}
}

// Submit files a join request. Submitting while one is already pending
// returns the pending request unchanged; members cannot re-apply.
func (s *TeamRequestService) Submit(ctx context.Context, req dto.CreateJoinRequest) (*models.TeamRequest, error) {
	team, err := s.teams.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.teams.IsMember(ctx, req.TeamID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, apperrors.ErrAlreadyMember
	}

	pending, err := s.requests.FindPending(ctx, req.TeamID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return pending, nil
	}

	request := &models.TeamRequest{
		ID:          uuid.NewString(),
		TeamID:      req.TeamID,
		StudentID:   req.StudentID,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC(),
		TeamName:    team.Name,
		StudentName: student.Name,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		// A concurrent submit won the partial unique index; hand back its row
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			if pending, ferr := s.requests.FindPending(ctx, req.TeamID, req.StudentID); ferr == nil && pending != nil {
				return pending, nil
			}
		}
		return nil, err
	}
	return request, nil
}

// ListPendingForTeam lists the open requests a leader has to act on
func (s *TeamRequestService) ListPendingForTeam(ctx context.Context, teamID string) ([]models.TeamRequest, error) {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.requests.ListPendingByTeam(ctx, teamID)
}

// ListAll lists every request for the admin overview
func (s *TeamRequestService) ListAll(ctx context.Context) ([]models.TeamRequest, error) {
	return s.requests.ListAll(ctx)
}

// Act resolves a pending request. Approval adds the requester to the team
// and both outcomes notify the requester. Acting on an already resolved
// request fails; the first decision stands.
func (s *TeamRequestService) Act(ctx context.Context, requestID string, action models.RequestAction) (*models.TeamRequest, error) {
	switch action {
	case models.ActionApprove:
		if err := s.requests.Approve(ctx, requestID); err != nil {
			return nil, err
		}
	case models.ActionReject:
		if err := s.requests.Reject(ctx, requestID); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ErrInvalidRequestAction
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.notifyRequester(ctx, request)
	return request, nil
}

// notifyRequester drops an inbox entry about the decision. Delivery is
// best effort; a failed insert never rolls back the resolution.
func (s *TeamRequestService) notifyRequester(ctx context.Context, request *models.TeamRequest) {
	title := "Join request approved"
	message := fmt.Sprintf("You are now a member of %s", request.TeamName)
	if request.Status == models.StatusRejected {
		title = "Join request rejected"
		message = fmt.Sprintf("Your request to join %s was declined", request.TeamName)
	}

	err := s.notifications.Create(ctx, &models.Notification{
		ID:        uuid.NewString(),
		StudentID: request.StudentID,
		Title:     title,
		Message:   message,
		Type:      models.NotificationTypeTeam,
		RelatedID: request.TeamID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Warn().Err(err).Str("requestId", request.ID).Msg("Failed to notify requester")
	}
}
