package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/internal/service/assistant"
	"github.com/agron-app/agron/pkg/clients/aigateway"
)

// ChatHandler relays assistant conversations.
type ChatHandler struct {
	svc    assistant.Service
	logger *zap.Logger
}

// NewChatHandler constructs the HTTP handler adapter.
func NewChatHandler(svc assistant.Service, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

// Chat forwards the conversation and returns the assistant's reply. Upstream
// rate-limit and quota failures keep their distinguishing statuses so
// clients can show a specific "try later" message.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.svc.Reply(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ChatReply{Reply: reply})
}

func (h *ChatHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrNoMessages):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, aigateway.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please wait a moment."})
	case errors.Is(err, aigateway.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Service temporarily unavailable."})
	default:
		h.logger.Error("chat relay failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service error"})
	}
}
