package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// LeaveController handles student-facing leave applications
type LeaveController struct {
	leaveService *services.LeaveService
}

// NewLeaveController creates a new LeaveController
func NewLeaveController(leaveService *services.LeaveService) *LeaveController {
	return &LeaveController{leaveService: leaveService}
}

// Submit files a leave application
// @Summary Submit leave application
// @Tags leaves
// @Accept json
// @Produce json
// @Param request body dto.CreateLeaveRequest true "Leave details"
// @Success 201 {object} models.LeaveApplication
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /leave-applications [post]
func (c *LeaveController) Submit(ctx *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	leave, err := c.leaveService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, leave)
}

// ListForStudent lists a student's own applications
// @Summary List a student's leave applications
// @Tags leaves
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {array} models.LeaveApplication
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /leave-applications/student/{id} [get]
func (c *LeaveController) ListForStudent(ctx *gin.Context) {
	leaves, err := c.leaveService.ListForStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, leaves)
}
