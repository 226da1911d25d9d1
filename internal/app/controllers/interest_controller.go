package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// InterestController handles the interest catalog
type InterestController struct {
	interestService *services.InterestService
}

// NewInterestController creates a new InterestController
func NewInterestController(interestService *services.InterestService) *InterestController {
	return &InterestController{interestService: interestService}
}

// createInterestRequest is the only body this controller binds
type createInterestRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ListInterests retrieves the catalog
// @Summary List interests
// @Tags interests
// @Produce json
// @Success 200 {array} models.Interest
// @Router /interests [get]
func (c *InterestController) ListInterests(ctx *gin.Context) {
	interests, err := c.interestService.ListInterests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, interests)
}

// CreateInterest adds a tag to the catalog (admin only). Re-adding an
// existing name returns the existing entry.
// @Summary Create interest
// @Tags interests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createInterestRequest true "Interest name"
// @Success 201 {object} models.Interest
// @Router /interests [post]
func (c *InterestController) CreateInterest(ctx *gin.Context) {
	var req createInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	interest, err := c.interestService.CreateInterest(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, interest)
}

// DeleteInterest removes a tag from the catalog (admin only)
// @Summary Delete interest
// @Tags interests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interest ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /interests/{id} [delete]
func (c *InterestController) DeleteInterest(ctx *gin.Context) {
	if err := c.interestService.DeleteInterest(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Interest deleted successfully"))
}
