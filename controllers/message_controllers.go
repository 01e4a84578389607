package controllers

import (
	"finbot/dto"
	"finbot/middleware"
	"finbot/response"
	"finbot/services"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

// GetMessages returns the caller's chat history, oldest first.
func (ctrl *MessageController) GetMessages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	messages, err := ctrl.Messages.ListForUser(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.MessageResponse{
			ID:        m.ID,
			Sender:    m.Sender,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}

	response.Success(c, out)
}

// ClearMessages wipes the caller's chat history.
func (ctrl *MessageController) ClearMessages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	cleared, err := ctrl.Messages.ClearForUser(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ClearedResponse{Cleared: cleared})
}
