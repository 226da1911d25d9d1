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

// teamStore is the slice of the team repository TeamService needs.
type teamStore interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id string) (*models.Team, error)
	List(ctx context.Context, search string) ([]models.Team, error)
	ListApprovedByStudent(ctx context.Context, studentID string) ([]models.Team, error)
}

// studentChecker verifies that referenced students exist.
type studentChecker interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
}

// TeamService handles team formation and discovery
type TeamService struct {
	teams    teamStore
	students studentChecker
}

// NewTeamService creates a new TeamService
func NewTeamService(teams teamStore, students studentChecker) *TeamService {
	return &TeamService{teams: teams, students: students}
}

// CreateTeam registers a new team. The team always starts pending and only
// becomes visible in approved listings after admin review. The leader is
// never duplicated into the member set.
func (s *TeamService) CreateTeam(ctx context.Context, req dto.CreateTeamRequest) (*models.Team, error) {
	leader, err := s.students.GetByID(ctx, req.LeaderID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, 0, len(req.MemberIDs))
	seen := map[string]struct{}{req.LeaderID: {}}
	for _, id := range req.MemberIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		if _, err := s.students.GetByID(ctx, id); err != nil {
			return nil, err
		}
		seen[id] = struct{}{}
		memberIDs = append(memberIDs, id)
	}

	team := &models.Team{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		LeaderID:   req.LeaderID,
		Status:     models.StatusPending,
		CreatedAt:  time.Now().UTC(),
		LeaderName: leader.Name,
		MemberIDs:  memberIDs,
		Interests:  req.Interests,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return s.teams.GetByID(ctx, team.ID)
}

// GetTeam retrieves a team with its roster
func (s *TeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	return s.teams.GetByID(ctx, id)
}

// ListTeams lists teams in every status, optionally filtered by a name
// search. Clients read the status field to badge pending and rejected ones.
func (s *TeamService) ListTeams(ctx context.Context, search string) ([]models.Team, error) {
	return s.teams.List(ctx, strings.TrimSpace(search))
}

// ListStudentTeams lists the approved teams a student belongs to, as
// leader or member.
func (s *TeamService) ListStudentTeams(ctx context.Context, studentID string) ([]models.Team, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.teams.ListApprovedByStudent(ctx, studentID)
}

// RequireApprovedMember checks that a student may use a team's private
// surfaces (chat). Leaders count as members.
func RequireApprovedMember(team *models.Team, studentID string) error {
	if team.LeaderID == studentID {
		return nil
	}
	for _, id := range team.MemberIDs {
		if id == studentID {
			return nil
		}
	}
	return apperrors.ErrPermissionDenied
}
