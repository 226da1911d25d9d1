package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// AdminController backs the moderation dashboard
type AdminController struct {
	adminService   *services.AdminService
	requestService *services.TeamRequestService
	leaveService   *services.LeaveService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, requestService *services.TeamRequestService, leaveService *services.LeaveService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		requestService: requestService,
		leaveService:   leaveService,
	}
}

// Stats aggregates the dashboard counters
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminStats
// @Router /admin/stats [get]
func (c *AdminController) Stats(ctx *gin.Context) {
	stats, err := c.adminService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListTeams lists every team for moderation
// @Summary List all teams
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Team
// @Router /admin/teams [get]
func (c *AdminController) ListTeams(ctx *gin.Context) {
	teams, err := c.adminService.ListAllTeams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, teams)
}

// ApproveTeam moves a team to approved
// @Summary Approve team
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/teams/{id}/approve [post]
func (c *AdminController) ApproveTeam(ctx *gin.Context) {
	if err := c.adminService.SetTeamStatus(ctx, ctx.Param("id"), models.StatusApproved); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Team approved successfully"))
}

// RejectTeam moves a team to rejected and dissolves its roster
// @Summary Reject team
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/teams/{id}/reject [post]
func (c *AdminController) RejectTeam(ctx *gin.Context) {
	if err := c.adminService.SetTeamStatus(ctx, ctx.Param("id"), models.StatusRejected); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Team rejected successfully"))
}

// DeleteTeam removes a team entirely
// @Summary Delete team
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/teams/{id} [delete]
func (c *AdminController) DeleteTeam(ctx *gin.Context) {
	if err := c.adminService.DeleteTeam(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Team deleted successfully"))
}

// RemoveMember takes a student off a team roster
// @Summary Remove team member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param member_id query string true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /admin/teams/{id}/remove-member [post]
func (c *AdminController) RemoveMember(ctx *gin.Context) {
	memberID := ctx.Query("member_id")
	if memberID == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("member_id query parameter is required"))
		return
	}
	if err := c.adminService.RemoveMember(ctx, ctx.Param("id"), memberID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Member removed successfully"))
}

// ListRequests lists every join request in the system
// @Summary List all join requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TeamRequest
// @Router /admin/requests [get]
func (c *AdminController) ListRequests(ctx *gin.Context) {
	requests, err := c.requestService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// ListLeaves lists every leave application for review
// @Summary List all leave applications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LeaveApplication
// @Router /admin/leave-applications [get]
func (c *AdminController) ListLeaves(ctx *gin.Context) {
	leaves, err := c.leaveService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, leaves)
}

// ActOnLeave resolves a pending leave application
// @Summary Resolve leave application
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave application ID"
// @Param request body dto.LeaveActionRequest true "Resolution"
// @Success 200 {object} models.LeaveApplication
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Router /admin/leave-applications/{id}/action [post]
func (c *AdminController) ActOnLeave(ctx *gin.Context) {
	var req dto.LeaveActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	leave, err := c.leaveService.Act(ctx, ctx.Param("id"), models.RequestAction(req.Action), req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, leave)
}
