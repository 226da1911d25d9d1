package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// leaveStore is the slice of the leave repository LeaveService needs.
type leaveStore interface {
	Create(ctx context.Context, leave *models.LeaveApplication) error
	GetByID(ctx context.Context, id string) (*models.LeaveApplication, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.LeaveApplication, error)
	ListAll(ctx context.Context) ([]models.LeaveApplication, error)
	Resolve(ctx context.Context, id string, status models.Status, comment *string) error
}

// LeaveService handles leave applications and their review
type LeaveService struct {
	leaves        leaveStore
	students      studentChecker
	notifications notificationWriter
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(leaves leaveStore, students studentChecker, notifications notificationWriter) *LeaveService {
	return &LeaveService{leaves: leaves, students: students, notifications: notifications}
}

// Submit files a leave application. The range must not run backwards.
func (s *LeaveService) Submit(ctx context.Context, req dto.CreateLeaveRequest) (*models.LeaveApplication, error) {
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if req.EndDate < req.StartDate {
		return nil, apperrors.NewBadRequestError("end date cannot precede start date")
	}

	leave := &models.LeaveApplication{
		ID:          uuid.NewString(),
		StudentID:   req.StudentID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		DocumentURL: req.DocumentURL,
		Status:      models.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.leaves.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// ListForStudent lists a student's own applications
func (s *LeaveService) ListForStudent(ctx context.Context, studentID string) ([]models.LeaveApplication, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.leaves.ListByStudent(ctx, studentID)
}

// ListAll lists every application for admin review
func (s *LeaveService) ListAll(ctx context.Context) ([]models.LeaveApplication, error) {
	return s.leaves.ListAll(ctx)
}

// Act resolves a pending application and notifies the applicant. The
// first resolution is final.
func (s *LeaveService) Act(ctx context.Context, id string, action models.RequestAction, comment *string) (*models.LeaveApplication, error) {
	status := models.StatusApproved
	switch action {
	case models.ActionApprove:
	case models.ActionReject:
		status = models.StatusRejected
	default:
		return nil, apperrors.ErrInvalidRequestAction
	}

	if err := s.leaves.Resolve(ctx, id, status, comment); err != nil {
		return nil, err
	}
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := "Leave application approved"
	if status == models.StatusRejected {
		title = "Leave application rejected"
	}
	message := "Your leave from " + leave.StartDate + " to " + leave.EndDate + " was " + string(status)
	err = s.notifications.Create(ctx, &models.Notification{
		ID:        uuid.NewString(),
		StudentID: leave.StudentID,
		Title:     title,
		Message:   message,
		Type:      models.NotificationTypeLeave,
		RelatedID: leave.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Warn().Err(err).Str("leaveId", leave.ID).Msg("Failed to notify applicant")
	}
	return leave, nil
}
