package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// TeamController handles team formation, discovery and join requests
type TeamController struct {
	teamService    *services.TeamService
	requestService *services.TeamRequestService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService *services.TeamService, requestService *services.TeamRequestService) *TeamController {
	return &TeamController{teamService: teamService, requestService: requestService}
}

// CreateTeam registers a new team, pending admin approval
// @Summary Create team
// @Description Registers a team with the caller as leader; the team starts in pending status
// @Tags teams
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} models.Team
// @Failure 404 {object} dto.ErrorResponse "Leader or member not found"
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	team, err := c.teamService.CreateTeam(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, team)
}

// ListTeams lists teams for the discovery view
// @Summary List teams
// @Tags teams
// @Produce json
// @Param search query string false "Name filter"
// @Success 200 {array} models.Team
// @Router /teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	teams, err := c.teamService.ListTeams(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teams)
}

// GetTeam retrieves a team with its roster
// @Summary Get team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (c *TeamController) GetTeam(ctx *gin.Context) {
	team, err := c.teamService.GetTeam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, team)
}

// ListStudentTeams lists the approved teams a student belongs to
// @Summary List a student's teams
// @Tags teams
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {array} models.Team
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teams/student/{id} [get]
func (c *TeamController) ListStudentTeams(ctx *gin.Context) {
	teams, err := c.teamService.ListStudentTeams(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teams)
}

// SubmitJoinRequest files a join request for a team
// @Summary Submit join request
// @Description Files a join request; a duplicate submit while one is pending returns the pending request
// @Tags teams
// @Accept json
// @Produce json
// @Param request body dto.CreateJoinRequest true "Join request"
// @Success 201 {object} models.TeamRequest
// @Failure 409 {object} dto.ErrorResponse "Already a member"
// @Router /team-requests [post]
func (c *TeamController) SubmitJoinRequest(ctx *gin.Context) {
	var req dto.CreateJoinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	request, err := c.requestService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, request)
}

// ListTeamRequests lists the pending requests for one team
// @Summary List pending join requests for a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.TeamRequest
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /team-requests/team/{id} [get]
func (c *TeamController) ListTeamRequests(ctx *gin.Context) {
	requests, err := c.requestService.ListPendingForTeam(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// ActOnRequest approves or rejects a pending join request
// @Summary Resolve join request
// @Description Approves or rejects a pending request; the first resolution is final
// @Tags teams
// @Accept json
// @Produce json
// @Param request body dto.RequestActionRequest true "Resolution"
// @Success 200 {object} models.TeamRequest
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already resolved"
// @Router /team-requests/action [post]
func (c *TeamController) ActOnRequest(ctx *gin.Context) {
	var req dto.RequestActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	request, err := c.requestService.Act(ctx, req.RequestID, models.RequestAction(req.Action))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}
