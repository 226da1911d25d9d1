package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rajni12071985-debug/pragati/internal/app/models/dto"
	"github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/middleware"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/ws"
)

// ChatController handles team chat over REST plus the room socket
type ChatController struct {
	chatService *services.ChatService
	hub         *ws.Hub
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService, hub *ws.Hub) *ChatController {
	return &ChatController{chatService: chatService, hub: hub}
}

// History retrieves a team's chat history
// @Summary Get chat history
// @Tags chat
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.Message
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/messages [get]
func (c *ChatController) History(ctx *gin.Context) {
	messages, err := c.chatService.History(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// Send posts a message to a team chat
// @Summary Send chat message
// @Description Posts a message; connected room subscribers get it pushed over the socket
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} models.Message
// @Failure 403 {object} dto.ErrorResponse "Not a team member"
// @Router /teams/{id}/messages [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}

	message, err := c.chatService.Send(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, message)
}

// Delete removes the caller's own message from a team chat
// @Summary Delete chat message
// @Description Deletes a message; only its author may delete it
// @Tags chat
// @Produce json
// @Param id path string true "Team ID"
// @Param messageId path string true "Message ID"
// @Param studentId query string true "Author student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /teams/{id}/messages/{messageId} [delete]
func (c *ChatController) Delete(ctx *gin.Context) {
	studentID := ctx.Query("studentId")
	if studentID == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("studentId query parameter is required"))
		return
	}

	if err := c.chatService.Delete(ctx, ctx.Param("id"), ctx.Param("messageId"), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Message deleted successfully"))
}

// Subscribe upgrades the request to a room socket that receives new
// messages as they are posted
// @Summary Subscribe to chat room
// @Tags chat
// @Param id path string true "Team ID"
// @Router /teams/{id}/chat/ws [get]
func (c *ChatController) Subscribe(ctx *gin.Context) {
	teamID := ctx.Param("id")
	if err := c.hub.Serve(ctx.Writer, ctx.Request, teamID); err != nil {
		log.Warn().Err(err).Str("teamId", teamID).Msg("WebSocket upgrade failed")
	}
}
