package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/domain/models"
	"github.com/agron-app/agron/internal/service/session"
)

// SessionHandler exposes the selection-flow operations over HTTP.
type SessionHandler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewSessionHandler constructs the HTTP handler adapter.
func NewSessionHandler(sessions *session.Manager, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{sessions: sessions, logger: logger}
}

// Create starts a new session at the language step.
func (h *SessionHandler) Create(c *gin.Context) {
	sess := h.sessions.Create()
	c.JSON(http.StatusCreated, sess)
}

// Get returns the current session snapshot.
func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetLanguage records the language selection.
func (h *SessionHandler) SetLanguage(c *gin.Context) {
	var req struct {
		Language models.Language `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid language payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.sessions.SetLanguage(c.Param("id"), req.Language)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetCrop records the crop selection.
func (h *SessionHandler) SetCrop(c *gin.Context) {
	var req struct {
		Crop models.CropType `json:"crop" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid crop payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.sessions.SetCrop(c.Param("id"), req.Crop)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetLandSize records the land-size selection.
func (h *SessionHandler) SetLandSize(c *gin.Context) {
	var req struct {
		LandSize models.LandSize `json:"landSize" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid land size payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.sessions.SetLandSize(c.Param("id"), req.LandSize)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Back moves the session one step backwards.
func (h *SessionHandler) Back(c *gin.Context) {
	sess, err := h.sessions.Back(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Home resets the profile selections, keeping the language.
func (h *SessionHandler) Home(c *gin.Context) {
	sess, err := h.sessions.Home(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Schemes returns the schemes matching the session's profile, localized to
// the session language. An incomplete profile yields an empty list, not an
// error.
func (h *SessionHandler) Schemes(c *gin.Context) {
	matched, sess, err := h.sessions.MatchingSchemes(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	schemes := make([]models.LocalizedScheme, 0, len(matched))
	for _, scheme := range matched {
		schemes = append(schemes, scheme.Localize(sess.Profile.Language))
	}

	c.JSON(http.StatusOK, gin.H{
		"schemes": schemes,
		"count":   len(schemes),
	})
}

func (h *SessionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, session.ErrInvalidLanguage),
		errors.Is(err, session.ErrInvalidCrop),
		errors.Is(err, session.ErrInvalidLandSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
