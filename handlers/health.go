package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/config"
)

// HealthHandler handles GET /healthz.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"env":    config.GetEnv(),
	})
}
