package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"voyago/handlers"
	"voyago/middleware"
)

// HandlerBundle groups the handlers the router serves.
type HandlerBundle struct {
	Recommend *handlers.RecommendHandler
	Chat      *handlers.ChatHandler
	Themes    *handlers.ThemeHandler
}

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(router *gin.Engine, h *HandlerBundle) {
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	router.Use(middleware.BearerTokenMiddleware())

	router.GET("/healthz", handlers.HealthHandler)

	api := router.Group("/api")
	{
		api.POST("/recommend", h.Recommend.GetRecommendations)
		api.POST("/chat", h.Chat.HandleChat)
		api.GET("/themes/:theme", h.Themes.GetThemePackages)
	}
}
