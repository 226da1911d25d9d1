package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// CompetitionController handles competition announcements
type CompetitionController struct {
	competitionService *services.CompetitionService
}

// NewCompetitionController creates a new CompetitionController
func NewCompetitionController(competitionService *services.CompetitionService) *CompetitionController {
	return &CompetitionController{competitionService: competitionService}
}

// ListCompetitions retrieves every competition
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Router /competitions [get]
func (c *CompetitionController) ListCompetitions(ctx *gin.Context) {
	competitions, err := c.competitionService.ListCompetitions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, competitions)
}

// CreateCompetition announces a competition (admin only)
// @Summary Create competition
// @Tags competitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompetitionRequest true "Competition details"
// @Success 201 {object} models.Competition
// @Router /competitions [post]
func (c *CompetitionController) CreateCompetition(ctx *gin.Context) {
	var req dto.CreateCompetitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	competition, err := c.competitionService.CreateCompetition(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, competition)
}

// DeleteCompetition removes a competition (admin only)
// @Summary Delete competition
// @Tags competitions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Competition ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Competition not found"
// @Router /competitions/{id} [delete]
func (c *CompetitionController) DeleteCompetition(ctx *gin.Context) {
	if err := c.competitionService.DeleteCompetition(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Competition deleted successfully"))
}
