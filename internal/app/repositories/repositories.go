package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over a shared connection pool
type Repositories struct {
	Students      *StudentRepository
	Interests     *InterestRepository
	Teams         *TeamRepository
	TeamRequests  *TeamRequestRepository
	Events        *EventRepository
	Messages      *MessageRepository
	Photos        *PhotoRepository
	Leaves        *LeaveRepository
	Notifications *NotificationRepository
	Competitions  *CompetitionRepository
	Admins        *AdminRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(db),
		Interests:     NewInterestRepository(db),
		Teams:         NewTeamRepository(db),
		TeamRequests:  NewTeamRequestRepository(db),
		Events:        NewEventRepository(db),
		Messages:      NewMessageRepository(db),
		Photos:        NewPhotoRepository(db),
		Leaves:        NewLeaveRepository(db),
		Notifications: NewNotificationRepository(db),
		Competitions:  NewCompetitionRepository(db),
		Admins:        NewAdminRepository(db),
	}
}
