package models

// ChatRequest is the chatbot endpoint input. AuthToken carries the
// caller's bearer token so intent handlers can query the upstream API
// on the user's behalf.
type ChatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"userId,omitempty"`
	AuthToken string `json:"authToken,omitempty"`
}

// ChatReply is the chatbot endpoint payload.
type ChatReply struct {
	Reply string `json:"reply"`
}

// ChatContext is the per-user conversation state kept between chatbot
// turns. It is owned by the chatbot service and cleared once consumed.
type ChatContext struct {
	AwaitingRating bool   `json:"awaitingRating,omitempty"`
	PackageID      string `json:"packageId,omitempty"`
}
