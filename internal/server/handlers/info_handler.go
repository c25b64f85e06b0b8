package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agron-app/agron/internal/service/alerts"
	"github.com/agron-app/agron/internal/service/weather"
)

// InfoHandler serves the supplementary content: weather and deadline alerts.
type InfoHandler struct {
	weatherSvc *weather.Service
	alertsSvc  *alerts.Service
}

// NewInfoHandler constructs the HTTP handler adapter.
func NewInfoHandler(weatherSvc *weather.Service, alertsSvc *alerts.Service) *InfoHandler {
	return &InfoHandler{weatherSvc: weatherSvc, alertsSvc: alertsSvc}
}

// Weather returns the cached snapshot localized to the requested language.
func (h *InfoHandler) Weather(c *gin.Context) {
	c.JSON(http.StatusOK, h.weatherSvc.Current(languageFromQuery(c)))
}

// Alerts returns the deadline feed and the notification badge count.
func (h *InfoHandler) Alerts(c *gin.Context) {
	lang := languageFromQuery(c)
	c.JSON(http.StatusOK, gin.H{
		"alerts":            h.alertsSvc.Deadlines(lang),
		"notificationCount": h.alertsSvc.NotificationCount(),
	})
}
