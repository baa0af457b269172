package models

// RecommendRequest is the input for the recommendation endpoint. The
// auth token is forwarded to the upstream API; its validity has already
// been verified by the caller.
type RecommendRequest struct {
	UserID    string `json:"user_id"`
	AuthToken string `json:"auth_token"`
}

// RecommendResponse is the recommendation endpoint payload.
type RecommendResponse struct {
	Success         bool            `json:"success"`
	UserID          string          `json:"user_id"`
	Recommendations []TravelPackage `json:"recommendations"`
}

// ThemePackage pairs a package with its average rating across bookings,
// used by the theme browsing endpoint.
type ThemePackage struct {
	TravelPackage
	Rating float64 `json:"rating"`
}
