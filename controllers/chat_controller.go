package controllers

import (
	"finbot/dto"
	"finbot/middleware"
	"finbot/response"
	"finbot/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// HandleChat runs one conversational turn. Upstream completion failures
// never reach the caller; only a persistence failure produces a server
// error, because then the turn was not recorded.
func (ctrl *ChatController) HandleChat(c *gin.Context) {
	var input dto.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		response.BadRequest(c, "Message is required")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	reply, err := ctrl.Chat.HandleMessage(userID, input.Message)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ChatReply{Reply: reply})
}
