package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// NotificationController handles per-student inboxes
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List retrieves a student's most recent notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {array} models.Notification
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /notifications/{id} [get]
func (c *NotificationController) List(ctx *gin.Context) {
	notifications, err := c.notificationService.List(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// UnreadCount returns the unread badge value
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.UnreadCountResponse
// @Router /notifications/{id}/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	count, err := c.notificationService.UnreadCount(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{Count: int(count)})
}

// MarkRead marks one notification as read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationService.MarkRead(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notification marked as read"))
}

// MarkAllRead clears a student's unread badge
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /notifications/{id}/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.notificationService.MarkAllRead(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("All notifications marked as read"))
}
