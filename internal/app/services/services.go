package services

import (
	"github.com/rajni12071985-debug/pragati/internal/app/repositories"
	"github.com/rajni12071985-debug/pragati/internal/pkg/auth"
	"github.com/rajni12071985-debug/pragati/internal/pkg/filestorage"
	"github.com/rajni12071985-debug/pragati/internal/pkg/ws"
)

// Services bundles every service behind the HTTP layer
type Services struct {
	Auth          *AuthService
	Students      *StudentService
	Interests     *InterestService
	Teams         *TeamService
	TeamRequests  *TeamRequestService
	Admin         *AdminService
	Events        *EventService
	Chat          *ChatService
	Photos        *PhotoService
	Leaves        *LeaveService
	Notifications *NotificationService
	Competitions  *CompetitionService
}

// NewServices wires all services over the repository set
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage *filestorage.LocalStorage, hub *ws.Hub) *Services {
	return &Services{
		Auth:          NewAuthService(repos.Students, repos.Admins, jwtService),
		Students:      NewStudentService(repos.Students),
		Interests:     NewInterestService(repos.Interests),
		Teams:         NewTeamService(repos.Teams, repos.Students),
		TeamRequests:  NewTeamRequestService(repos.TeamRequests, repos.Teams, repos.Students, repos.Notifications),
		Admin:         NewAdminService(repos.Teams, repos.Students, repos.Events, repos.TeamRequests),
		Events:        NewEventService(repos.Events, repos.Students, repos.Notifications),
		Chat:          NewChatService(repos.Messages, repos.Teams, repos.Students, hub),
		Photos:        NewPhotoService(repos.Photos, storage),
		Leaves:        NewLeaveService(repos.Leaves, repos.Students, repos.Notifications),
		Notifications: NewNotificationService(repos.Notifications, repos.Students),
		Competitions:  NewCompetitionService(repos.Competitions, repos.Notifications),
	}
}
