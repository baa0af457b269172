package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyago/graphapi"
	"voyago/middleware"
	"voyago/models"
	"voyago/services/recommend"
	"voyago/utils"
)

// RecommendHandler serves personalized package recommendations.
type RecommendHandler struct {
	Engine recommend.RecommenderService
	Graph  *graphapi.Client
	Logger *zap.Logger
}

// NewRecommendHandler creates a RecommendHandler.
func NewRecommendHandler(engine recommend.RecommenderService, graph *graphapi.Client, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{Engine: engine, Graph: graph, Logger: logger}
}

// GetRecommendations handles POST /api/recommend. It fetches fresh
// booking and catalog snapshots from the upstream API with the caller's
// token, runs the engine, and returns the ranked package list. An empty
// result list is a success, not an error; only upstream fetch failures
// fail the request.
func (h *RecommendHandler) GetRecommendations(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.AuthToken == "" {
		req.AuthToken = c.GetString(middleware.ContextAuthToken)
	}
	if req.UserID == "" {
		req.UserID = c.GetString(middleware.ContextUserID)
	}
	if req.UserID == "" || req.AuthToken == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing user_id or auth_token", "")
		return
	}

	requestID := uuid.New().String()
	logger := h.Logger.With(
		zap.String("request_id", requestID),
		zap.String("user_id", req.UserID),
	)

	ctx := c.Request.Context()
	bookings, err := h.Graph.BookingHistory(ctx, req.UserID, req.AuthToken)
	if err != nil {
		logger.Error("failed to fetch booking history", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch booking history", err.Error())
		return
	}
	catalog, err := h.Graph.Packages(ctx, req.AuthToken)
	if err != nil {
		logger.Error("failed to fetch package catalog", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch package catalog", err.Error())
		return
	}

	// The history snapshot is population-wide; split out the target
	// user's own bookings.
	userBookings := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		if bookings[i].User.ID == req.UserID {
			userBookings = append(userBookings, bookings[i])
		}
	}

	recommendations := h.Engine.GetRecommendations(req.UserID, userBookings, bookings, catalog)
	logger.Info("served recommendations",
		zap.Int("bookings", len(bookings)),
		zap.Int("catalog", len(catalog)),
		zap.Int("results", len(recommendations)))

	c.JSON(http.StatusOK, models.RecommendResponse{
		Success:         true,
		UserID:          req.UserID,
		Recommendations: recommendations,
	})
}
