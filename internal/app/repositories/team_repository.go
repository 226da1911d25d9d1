package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/db"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// TeamRepository handles database operations for teams and their rosters
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamSelect = `
	SELECT t.id, t.name, t.leader_id, t.status, t.created_at,
		COALESCE(l.name, ''),
		COALESCE((SELECT array_agg(ti.interest ORDER BY ti.interest) FROM team_interests ti WHERE ti.team_id = t.id), '{}')
	FROM teams t
	LEFT JOIN students l ON l.id = t.leader_id
`

func (r *TeamRepository) scanTeams(rows pgx.Rows) ([]models.Team, error) {
	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		var leaderID *string
		err := rows.Scan(&team.ID, &team.Name, &leaderID, &team.Status, &team.CreatedAt,
			&team.LeaderName, &team.Interests)
		if err != nil {
			return nil, fmt.Errorf("error scanning team row: %w", err)
		}
		if leaderID != nil {
			team.LeaderID = *leaderID
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// attachMembers loads the member roster for every team in the slice
func (r *TeamRepository) attachMembers(ctx context.Context, teams []models.Team) error {
	if len(teams) == 0 {
		return nil
	}

	ids := make([]string, len(teams))
	index := make(map[string]*models.Team, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
		teams[i].MemberIDs = []string{}
		teams[i].Members = []models.TeamMember{}
		index[teams[i].ID] = &teams[i]
	}

	rows, err := r.db.Query(ctx, `
		SELECT tm.team_id, tm.student_id, s.name
		FROM team_members tm
		JOIN students s ON s.id = tm.student_id
		WHERE tm.team_id = ANY($1)
		ORDER BY s.name
	`, ids)
	if err != nil {
		return fmt.Errorf("error querying team members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teamID string
		var member models.TeamMember
		if err := rows.Scan(&teamID, &member.ID, &member.Name); err != nil {
			return fmt.Errorf("error scanning member row: %w", err)
		}
		if team, ok := index[teamID]; ok {
			team.MemberIDs = append(team.MemberIDs, member.ID)
			team.Members = append(team.Members, member)
		}
	}
	return rows.Err()
}

// Create inserts a team with its initial roster and interest snapshot
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO teams (id, name, leader_id, status, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, team.ID, team.Name, team.LeaderID, team.Status, team.CreatedAt)
		if err != nil {
			return fmt.Errorf("error inserting team: %w", err)
		}

		for _, memberID := range team.MemberIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO team_members (team_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				team.ID, memberID); err != nil {
				return fmt.Errorf("error inserting team member: %w", err)
			}
		}

		for _, interest := range team.Interests {
			if _, err := tx.Exec(ctx,
				`INSERT INTO team_interests (team_id, interest) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				team.ID, interest); err != nil {
				return fmt.Errorf("error inserting team interest: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a team with roster and interests
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	rows, err := r.db.Query(ctx, teamSelect+` WHERE t.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("error querying team: %w", err)
	}
	teams, err := r.scanTeams(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, apperrors.ErrTeamNotFound
	}
	if err := r.attachMembers(ctx, teams); err != nil {
		return nil, err
	}
	return &teams[0], nil
}

// List retrieves all teams, optionally filtered by a name search
func (r *TeamRepository) List(ctx context.Context, search string) ([]models.Team, error) {
	query := teamSelect
	args := []interface{}{}
	if search != "" {
		query += ` WHERE t.name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying teams: %w", err)
	}
	teams, err := r.scanTeams(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if err := r.attachMembers(ctx, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ListApprovedByStudent retrieves the approved teams a student belongs to,
// whether as leader or member.
func (r *TeamRepository) ListApprovedByStudent(ctx context.Context, studentID string) ([]models.Team, error) {
	rows, err := r.db.Query(ctx, teamSelect+`
		WHERE t.status = $1
		AND (t.leader_id = $2 OR EXISTS(SELECT 1 FROM team_members tm WHERE tm.team_id = t.id AND tm.student_id = $2))
		ORDER BY t.created_at DESC
	`, models.StatusApproved, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying student teams: %w", err)
	}
	teams, err := r.scanTeams(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if err := r.attachMembers(ctx, teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateStatus transitions a team's moderation status. Rejection dissolves
// the roster in the same transaction so the members return to the pool.
func (r *TeamRepository) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `UPDATE teams SET status = $1 WHERE id = $2`, status, id)
		if err != nil {
			return fmt.Errorf("error updating team status: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrTeamNotFound
		}
		if status == models.StatusRejected {
			if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
				return fmt.Errorf("error dissolving team roster: %w", err)
			}
		}
		return nil
	})
}

// Delete removes a team; members, requests and messages cascade
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting team: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// IsMember reports whether the student is on the team's roster or leads it
func (r *TeamRepository) IsMember(ctx context.Context, teamID, studentID string) (bool, error) {
	var isMember bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id = $1 AND student_id = $2)
			OR EXISTS(SELECT 1 FROM teams WHERE id = $1 AND leader_id = $2)
	`, teamID, studentID).Scan(&isMember)
	if err != nil {
		return false, fmt.Errorf("error checking membership: %w", err)
	}
	return isMember, nil
}

// RemoveMember takes one student off the roster without touching team status
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, studentID string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND student_id = $2`, teamID, studentID)
	if err != nil {
		return fmt.Errorf("error removing member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("member not found on this team")
	}
	return nil
}

// Exists reports whether a team exists
func (r *TeamRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking team: %w", err)
	}
	return exists, nil
}

// CountAll returns the total number of teams
func (r *TeamRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}
