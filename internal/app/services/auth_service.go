package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/auth"
	"github.com/rajni12071985-debug/pragati/internal/pkg/validation"
)

// studentDirectory is the slice of the student repository AuthService needs.
type studentDirectory interface {
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

// adminCredentials reads the seeded moderation credential.
type adminCredentials interface {
	Get(ctx context.Context) (*models.Admin, error)
}

// AuthService handles student enrollment-on-login and admin authentication
type AuthService struct {
	students   studentDirectory
	admins     adminCredentials
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(students studentDirectory, admins adminCredentials, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		students:   students,
		admins:     admins,
		jwtService: jwtService,
	}
}

// StudentLogin signs a student in by roll number. An unknown roll number
// enrolls the student; a known one returns the existing record untouched,
// so the roll number stays the identity even if the submitted name drifts.
func (s *AuthService) StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (*models.Student, error) {
	// The roll number is matched as submitted; lowercase or padded input
	// is rejected rather than normalized.
	rollNumber := req.RollNumber
	if !validation.IsValidRollNumber(rollNumber) {
		return nil, apperrors.ErrInvalidRollNumber
	}

	student, err := s.students.GetByRollNumber(ctx, rollNumber)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	student = &models.Student{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Branch:     req.Branch,
		Year:       req.Year,
		RollNumber: rollNumber,
		CreatedAt:  time.Now().UTC(),
		Interests:  []string{},
		TeamIDs:    []string{},
	}
	if err := s.students.Create(ctx, student); err != nil {
		// Two first logins can race on the same roll number; the unique
		// index picks a winner, the loser reads it back.
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return s.students.GetByRollNumber(ctx, rollNumber)
		}
		return nil, err
	}

	log.Info().Str("studentId", student.ID).Str("rollNumber", rollNumber).Msg("Student enrolled")
	return student, nil
}

// AdminLogin verifies the admin password and issues a JWT
func (s *AuthService) AdminLogin(ctx context.Context, password string) (*dto.TokenResponse, error) {
	admin, err := s.admins.Get(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
