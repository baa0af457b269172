package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/graphapi"
	"voyago/middleware"
	"voyago/models"
	"voyago/services/recommend"
	"voyago/utils"
)

// ThemeHandler serves themed top-package lists.
type ThemeHandler struct {
	Graph  *graphapi.Client
	Logger *zap.Logger
}

// NewThemeHandler creates a ThemeHandler.
func NewThemeHandler(graph *graphapi.Client, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{Graph: graph, Logger: logger}
}

// GetThemePackages handles GET /api/themes/:theme. It ranks packages
// matching the theme keywords by average booking rating.
func (h *ThemeHandler) GetThemePackages(c *gin.Context) {
	theme := c.Param("theme")
	userID := c.Query("user_id")
	if userID == "" {
		userID = c.GetString(middleware.ContextUserID)
	}
	token := c.GetString(middleware.ContextAuthToken)

	bookings, err := h.Graph.BookingHistory(c.Request.Context(), userID, token)
	if err != nil {
		h.Logger.Error("failed to fetch booking history", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch booking history", err.Error())
		return
	}

	if !themeKnown(theme) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Unknown theme",
			"themes": recommend.Themes(),
		})
		return
	}

	packages := recommend.TopPackagesByTheme(theme, bookings, 5)
	if packages == nil {
		packages = []models.ThemePackage{}
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme, "packages": packages})
}

func themeKnown(theme string) bool {
	for _, t := range recommend.Themes() {
		if t == theme {
			return true
		}
	}
	return false
}
