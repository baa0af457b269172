package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/middleware"
	"voyago/models"
	"voyago/services/chatbot"
	"voyago/utils"
)

// ChatHandler serves the chatbot endpoint.
type ChatHandler struct {
	Service chatbot.ChatService
	Logger  *zap.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(service chatbot.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: service, Logger: logger}
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "No input message provided", "")
		return
	}
	if req.AuthToken == "" {
		req.AuthToken = c.GetString(middleware.ContextAuthToken)
	}
	if req.UserID == "" {
		req.UserID = c.GetString(middleware.ContextUserID)
	}

	reply, err := h.Service.HandleMessage(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("chat handling failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, reply)
}
