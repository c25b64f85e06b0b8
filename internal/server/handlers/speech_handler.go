package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/internal/service/speech"
)

// SpeechHandler relays text-to-speech requests.
type SpeechHandler struct {
	svc    speech.Service
	logger *zap.Logger
}

// NewSpeechHandler constructs the HTTP handler adapter.
func NewSpeechHandler(svc speech.Service, logger *zap.Logger) *SpeechHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeechHandler{svc: svc, logger: logger}
}

// Synthesize turns text into audio. Every failure surfaces as a 400 with a
// JSON error body; success streams the audio bytes with their MIME type.
func (h *SpeechHandler) Synthesize(c *gin.Context) {
	var req models.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid speech payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	audio, contentType, err := h.svc.Synthesize(c.Request.Context(), req)
	if err != nil {
		h.logger.Warn("speech synthesis failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, contentType, audio)
}
