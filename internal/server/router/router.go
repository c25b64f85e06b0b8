package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Sessions *handlers.SessionHandler
	Catalog  *handlers.CatalogHandler
	Speech   *handlers.SpeechHandler
	Chat     *handlers.ChatHandler
	Info     *handlers.InfoHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.POST("/sessions", h.Sessions.Create)
		api.GET("/sessions/:id", h.Sessions.Get)
		api.POST("/sessions/:id/language", h.Sessions.SetLanguage)
		api.POST("/sessions/:id/crop", h.Sessions.SetCrop)
		api.POST("/sessions/:id/land", h.Sessions.SetLandSize)
		api.POST("/sessions/:id/back", h.Sessions.Back)
		api.POST("/sessions/:id/home", h.Sessions.Home)
		api.GET("/sessions/:id/schemes", h.Sessions.Schemes)

		api.GET("/languages", h.Catalog.Languages)
		api.GET("/crops", h.Catalog.Crops)
		api.GET("/land-sizes", h.Catalog.LandSizes)
		api.GET("/ui-text", h.Catalog.UIText)

		api.POST("/speech", h.Speech.Synthesize)
		api.POST("/chat", h.Chat.Chat)

		api.GET("/weather", h.Info.Weather)
		api.GET("/alerts", h.Info.Alerts)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// corsMiddleware keeps the API open to any origin; the app is public and
// carries no cookies or session credentials in headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
