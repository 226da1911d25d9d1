package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

func newAdminFixture() (*fakeTeams, *fakeStudents, *fakeRequests, *AdminService) {
	teams := newFakeTeams(&models.Team{
		ID:        "team-1",
		Name:      "Robotics Club",
		LeaderID:  "stu-1",
		Status:    models.StatusApproved,
		MemberIDs: []string{"stu-2"},
	})
	students := newFakeStudents(
		&models.Student{ID: "stu-1", Branch: "CSE", RollNumber: "2024BTCS001"},
		&models.Student{ID: "stu-2", Branch: "CSE", RollNumber: "2024BTCS002"},
		&models.Student{ID: "stu-3", Branch: "AI", RollNumber: "2024BTAI001"},
	)
	students.teams = teams
	requests := newFakeRequests(teams,
		&models.TeamRequest{ID: "req-1", TeamID: "team-1", StudentID: "stu-3", Status: models.StatusPending},
		&models.TeamRequest{ID: "req-2", TeamID: "team-1", StudentID: "stu-2", Status: models.StatusApproved},
	)
	svc := NewAdminService(teams, students, newFakeEvents(), requests)
	return teams, students, requests, svc
}

func TestStats_CountsBranchesAndRequests(t *testing.T) {
	_, _, _, svc := newAdminFixture()

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalStudents)
	assert.Equal(t, int64(1), stats.TotalTeams)
	assert.Equal(t, int64(1), stats.TotalLeaders)
	assert.Equal(t, int64(2), stats.CSEStudents)
	assert.Equal(t, int64(1), stats.AIStudents)
	assert.Equal(t, int64(1), stats.PendingRequests)
	assert.Equal(t, int64(1), stats.ApprovedRequests)
	assert.Equal(t, int64(0), stats.RejectedRequests)
}

func TestStats_AIStudentsCountsTheAIBranch(t *testing.T) {
	_, students, _, svc := newAdminFixture()
	require.NoError(t, students.Create(context.Background(),
		&models.Student{ID: "stu-4", Branch: "AI", RollNumber: "2025BTAI007"}))

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.AIStudents)
	assert.Equal(t, int64(2), stats.CSEStudents)
}

func TestSetTeamStatus_RejectDissolvesRoster(t *testing.T) {
	teams, _, _, svc := newAdminFixture()

	require.NoError(t, svc.SetTeamStatus(context.Background(), "team-1", models.StatusRejected))

	team, err := teams.GetByID(context.Background(), "team-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, team.Status)
	assert.Empty(t, team.MemberIDs)
}

func TestSetTeamStatus_UnknownTeam(t *testing.T) {
	_, _, _, svc := newAdminFixture()

	err := svc.SetTeamStatus(context.Background(), "team-missing", models.StatusApproved)

	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestRemoveMember_TakesStudentOffRoster(t *testing.T) {
	teams, _, _, svc := newAdminFixture()

	require.NoError(t, svc.RemoveMember(context.Background(), "team-1", "stu-2"))

	team, err := teams.GetByID(context.Background(), "team-1")
	require.NoError(t, err)
	assert.NotContains(t, team.MemberIDs, "stu-2")
}

func TestRemoveMember_UnknownTeam(t *testing.T) {
	_, _, _, svc := newAdminFixture()

	err := svc.RemoveMember(context.Background(), "team-missing", "stu-2")

	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}
