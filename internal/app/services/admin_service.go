package services

import (
	"context"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
)

// moderatedTeamStore is the slice of the team repository the moderation
// surface needs.
type moderatedTeamStore interface {
	GetByID(ctx context.Context, id string) (*models.Team, error)
	List(ctx context.Context, search string) ([]models.Team, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) error
	Delete(ctx context.Context, id string) error
	RemoveMember(ctx context.Context, teamID, studentID string) error
	CountAll(ctx context.Context) (int64, error)
}

// studentCounters feeds the dashboard's student counters.
type studentCounters interface {
	CountAll(ctx context.Context) (int64, error)
	CountLeaders(ctx context.Context) (int64, error)
	CountByBranch(ctx context.Context, branch string) (int64, error)
}

// eventCounter feeds the dashboard's event counter.
type eventCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

// requestCounters feeds the dashboard's per-status request counters.
type requestCounters interface {
	CountByStatus(ctx context.Context, status models.Status) (int64, error)
}

// AdminService backs the moderation dashboard
type AdminService struct {
	teams    moderatedTeamStore
	students studentCounters
	events   eventCounter
	requests requestCounters
}

// NewAdminService creates a new AdminService
func NewAdminService(teams moderatedTeamStore, students studentCounters, events eventCounter, requests requestCounters) *AdminService {
	return &AdminService{
		teams:    teams,
		students: students,
		events:   events,
		requests: requests,
	}
}

// ListAllTeams lists every team regardless of status
func (s *AdminService) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	return s.teams.List(ctx, "")
}

// SetTeamStatus moves a team to approved or rejected. A rejected team is
// dissolved: its roster empties so the students return to the pool.
func (s *AdminService) SetTeamStatus(ctx context.Context, teamID string, status models.Status) error {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return err
	}
	return s.teams.UpdateStatus(ctx, teamID, status)
}

// DeleteTeam removes a team with its roster, requests and chat
func (s *AdminService) DeleteTeam(ctx context.Context, teamID string) error {
	return s.teams.Delete(ctx, teamID)
}

// RemoveMember takes a student off a team roster
func (s *AdminService) RemoveMember(ctx context.Context, teamID, studentID string) error {
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return err
	}
	return s.teams.RemoveMember(ctx, teamID, studentID)
}

// Stats aggregates the dashboard counters. The branch split matches the
// two branches the client enrolls: CSE and AI.
func (s *AdminService) Stats(ctx context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}

	counters := []struct {
		dst   *int64
		fetch func(ctx context.Context) (int64, error)
	}{
		{&stats.TotalStudents, s.students.CountAll},
		{&stats.TotalTeams, s.teams.CountAll},
		{&stats.TotalLeaders, s.students.CountLeaders},
		{&stats.TotalEvents, s.events.CountAll},
		{&stats.PendingRequests, s.countRequests(models.StatusPending)},
		{&stats.ApprovedRequests, s.countRequests(models.StatusApproved)},
		{&stats.RejectedRequests, s.countRequests(models.StatusRejected)},
		{&stats.CSEStudents, s.countBranch("CSE")},
		{&stats.AIStudents, s.countBranch("AI")},
	}
	for _, c := range counters {
		value, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = value
	}
	return stats, nil
}

func (s *AdminService) countRequests(status models.Status) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		return s.requests.CountByStatus(ctx, status)
	}
}

func (s *AdminService) countBranch(branch string) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		return s.students.CountByBranch(ctx, branch)
	}
}
