package chatbot

import (
	"strings"

	"voyago/services/recommend"
)

// Chatbot intents, in classifier priority order. Ties in similarity go
// to the earliest intent.
const (
	IntentPackages  = "packages"
	IntentBookings  = "bookings"
	IntentFAQ       = "faq"
	IntentFeedback  = "feedback"
	IntentCompare   = "compare"
	IntentRecommend = "recommend"
	IntentCancel    = "cancel"
)

// intentOrder fixes the classification order.
var intentOrder = []string{
	IntentPackages,
	IntentBookings,
	IntentFAQ,
	IntentFeedback,
	IntentCompare,
	IntentRecommend,
	IntentCancel,
}

// intentKeywords maps each intent to the keyword document the
// classifier is fitted on.
var intentKeywords = map[string][]string{
	IntentPackages:  {"package", "travel", "trip", "destination", "itinerary", "cost", "price", "duration", "slot", "availability", "explore", "see packages", "tour"},
	IntentBookings:  {"my booking", "booking status", "confirmed", "pending", "cancelled", "cancel booking", "refunded", "confirmation", "package booked", "when did i book"},
	IntentFAQ:       {"payment", "discount", "login", "logout", "help", "support", "contact", "customer care", "offers", "complaint", "register", "account", "email", "sign up"},
	IntentFeedback:  {"rate", "review", "feedback", "comment", "opinion"},
	IntentCompare:   {"compare", "difference", "better", "vs", "versus"},
	IntentRecommend: {"recommend", "suggest", "best", "ideal", "suitable"},
	IntentCancel:    {"cancel", "refund", "money back", "revoke", "stop trip", "stop booking"},
}

// minIntentSimilarity is the cutoff below which a message is treated as
// not understood.
const minIntentSimilarity = 0.1

// Classifier maps free-text messages to intents by cosine similarity
// between the message and per-intent keyword documents in a shared
// TF-IDF space. It is constructed explicitly with its fitted state and
// shared read-only afterwards.
type Classifier struct {
	vectorizer *recommend.Vectorizer
	vectors    []recommend.Vector
}

// NewClassifier fits a classifier over the intent keyword documents.
func NewClassifier() (*Classifier, error) {
	docs := make([]string, len(intentOrder))
	for i, intent := range intentOrder {
		docs[i] = strings.Join(intentKeywords[intent], " ")
	}
	vectorizer := recommend.NewVectorizer(0, 1)
	if err := vectorizer.Fit(docs); err != nil {
		return nil, err
	}
	vectors := make([]recommend.Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = vectorizer.Transform(doc)
	}
	return &Classifier{vectorizer: vectorizer, vectors: vectors}, nil
}

// Classify returns the best-matching intent and its similarity score.
// It returns an empty intent when the message resembles nothing.
func (c *Classifier) Classify(message string) (string, float64) {
	query := c.vectorizer.Transform(message)
	best := -1
	var bestScore float64
	for i, vec := range c.vectors {
		score := recommend.Cosine(query, vec)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 || bestScore < minIntentSimilarity {
		return "", bestScore
	}
	return intentOrder[best], bestScore
}
