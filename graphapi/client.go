package graphapi

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"voyago/models"
)

const bookingHistoryQuery = `
query ($userId: ID!) {
	getBookingHistory(userId: $userId) {
		id
		user {
			id
			username
		}
		package {
			id
			title
			description
			price
			duration
			destination
			availability
		}
		date
		status
		rating
		review
	}
}`

const packagesQuery = `
query {
	getPackages {
		id
		title
		description
		price
		duration
		destination
		availability
	}
}`

// Client talks to the upstream booking GraphQL API. The caller's bearer
// token is forwarded on every request; token validity is verified
// upstream, never here.
type Client struct {
	gql    *graphql.Client
	logger *zap.Logger
}

// NewClient returns a client for the given GraphQL endpoint.
func NewClient(endpoint string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		gql:    graphql.NewClient(endpoint),
		logger: logger,
	}
}

// BookingHistory fetches the booking snapshot for a user. The upstream
// schema returns population-wide bookings so collaborative filtering
// can see co-occurrence across users.
func (c *Client) BookingHistory(ctx context.Context, userID, authToken string) ([]models.Booking, error) {
	req := graphql.NewRequest(bookingHistoryQuery)
	req.Var("userId", userID)
	req.Header.Set("Authorization", "Bearer "+authToken)

	var resp struct {
		GetBookingHistory []models.Booking `json:"getBookingHistory"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("fetch booking history: %w", err)
	}
	c.logger.Debug("fetched booking history",
		zap.String("user_id", userID),
		zap.Int("bookings", len(resp.GetBookingHistory)))
	return resp.GetBookingHistory, nil
}

// Packages fetches the full package catalog.
func (c *Client) Packages(ctx context.Context, authToken string) ([]models.TravelPackage, error) {
	req := graphql.NewRequest(packagesQuery)
	req.Header.Set("Authorization", "Bearer "+authToken)

	var resp struct {
		GetPackages []models.TravelPackage `json:"getPackages"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("fetch packages: %w", err)
	}
	c.logger.Debug("fetched package catalog",
		zap.Int("packages", len(resp.GetPackages)))
	return resp.GetPackages, nil
}
