package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
)

// EventController handles event announcements and interest polling
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents retrieves every event with its interest rolls
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateEvent announces an event and notifies every student (admin only)
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} models.Event
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// DeleteEvent removes an event (admin only)
// @Summary Delete event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	if err := c.eventService.DeleteEvent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Event deleted successfully"))
}

// SetInterest records a student's stance on an event
// @Summary Mark event interest
// @Description Marks a student interested or not interested; re-submitting moves them between the sets
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventInterestRequest true "Interest stance"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Event or student not found"
// @Router /events/interest [post]
func (c *EventController) SetInterest(ctx *gin.Context) {
	var req dto.EventInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	if err := c.eventService.SetInterest(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Interest recorded successfully"))
}

// InterestedStudents lists who signed up for an event (admin only)
// @Summary List interested students
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.InterestedStudentsResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/interested [get]
func (c *EventController) InterestedStudents(ctx *gin.Context) {
	response, err := c.eventService.InterestedStudents(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}
