package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/controllers"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth          *controllers.AuthController
	Students      *controllers.StudentController
	Interests     *controllers.InterestController
	Teams         *controllers.TeamController
	Admin         *controllers.AdminController
	Events        *controllers.EventController
	Chat          *controllers.ChatController
	Photos        *controllers.PhotoController
	Leaves        *controllers.LeaveController
	Notifications *controllers.NotificationController
	Competitions  *controllers.CompetitionController
}

// SetupRouter configures all application routes. Student surfaces are
// tokenless; everything mutating shared catalogs or moderating content
// sits behind the admin JWT.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	adminOnly := []gin.HandlerFunc{authMiddleware.JWTAuth(), authMiddleware.RequireAdmin()}

	// --- Auth ---
	api.POST("/auth/student", c.Auth.StudentLogin)
	api.POST("/admin/login", c.Auth.AdminLogin)

	// --- Students ---
	students := api.Group("/students")
	{
		students.GET("", c.Students.ListStudents)
		students.GET("/:id", c.Students.GetStudent)
		students.PUT("/:id/interests", c.Students.UpdateInterests)
	}

	// --- Interest catalog ---
	interests := api.Group("/interests")
	{
		interests.GET("", c.Interests.ListInterests)
		interests.POST("", append(adminOnly, c.Interests.CreateInterest)...)
		interests.DELETE("/:id", append(adminOnly, c.Interests.DeleteInterest)...)
	}

	// --- Teams and chat ---
	teams := api.Group("/teams")
	{
		teams.GET("", c.Teams.ListTeams)
		teams.POST("", c.Teams.CreateTeam)
		teams.GET("/student/:id", c.Teams.ListStudentTeams)
		teams.GET("/:id", c.Teams.GetTeam)

		teams.GET("/:id/messages", c.Chat.History)
		teams.POST("/:id/messages", c.Chat.Send)
		teams.DELETE("/:id/messages/:messageId", c.Chat.Delete)
		teams.GET("/:id/chat/ws", c.Chat.Subscribe)
	}

	// --- Join requests ---
	requests := api.Group("/team-requests")
	{
		requests.POST("", c.Teams.SubmitJoinRequest)
		requests.GET("/team/:id", c.Teams.ListTeamRequests)
		requests.POST("/action", c.Teams.ActOnRequest)
	}

	// --- Events ---
	events := api.Group("/events")
	{
		events.GET("", c.Events.ListEvents)
		events.POST("/interest", c.Events.SetInterest)
		events.POST("", append(adminOnly, c.Events.CreateEvent)...)
		events.DELETE("/:id", append(adminOnly, c.Events.DeleteEvent)...)
		events.GET("/:id/interested", append(adminOnly, c.Events.InterestedStudents)...)
	}

	// --- Photo feed ---
	photos := api.Group("/photos")
	{
		photos.GET("", c.Photos.ListPhotos)
		photos.POST("/:id/like", c.Photos.ToggleLike)
		photos.POST("", append(adminOnly, c.Photos.AddPhoto)...)
		photos.DELETE("/:id", append(adminOnly, c.Photos.DeletePhoto)...)
	}

	// --- Leave applications ---
	leaves := api.Group("/leave-applications")
	{
		leaves.POST("", c.Leaves.Submit)
		leaves.GET("/student/:id", c.Leaves.ListForStudent)
	}

	// --- Notifications ---
	// The :id segment is the student for listing and counts, the
	// notification for read marks, matching the portal client's calls.
	notifications := api.Group("/notifications")
	{
		notifications.GET("/:id", c.Notifications.List)
		notifications.GET("/:id/unread-count", c.Notifications.UnreadCount)
		notifications.POST("/:id/read", c.Notifications.MarkRead)
		notifications.POST("/:id/read-all", c.Notifications.MarkAllRead)
	}

	// --- Competitions ---
	competitions := api.Group("/competitions")
	{
		competitions.GET("", c.Competitions.ListCompetitions)
		competitions.POST("", append(adminOnly, c.Competitions.CreateCompetition)...)
		competitions.DELETE("/:id", append(adminOnly, c.Competitions.DeleteCompetition)...)
	}

	// --- Admin dashboard ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/stats", c.Admin.Stats)
		admin.GET("/students", c.Students.ListStudents)
		admin.DELETE("/students/:id", c.Students.DeleteStudent)
		admin.GET("/teams", c.Admin.ListTeams)
		admin.POST("/teams/:id/approve", c.Admin.ApproveTeam)
		admin.POST("/teams/:id/reject", c.Admin.RejectTeam)
		admin.DELETE("/teams/:id", c.Admin.DeleteTeam)
		admin.POST("/teams/:id/remove-member", c.Admin.RemoveMember)
		admin.GET("/requests", c.Admin.ListRequests)
		admin.GET("/leave-applications", c.Admin.ListLeaves)
		admin.POST("/leave-applications/:id/action", c.Admin.ActOnLeave)
	}
}
