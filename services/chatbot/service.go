package chatbot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"voyago/database/repository"
	"voyago/models"
)

// ContextStore is the conversation-state contract the chat service
// depends on.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.ChatContext, error)
	Set(ctx context.Context, userID string, chatCtx *models.ChatContext) error
	Clear(ctx context.Context, userID string) error
}

// BookingProvider fetches booking history for the bookings intent.
type BookingProvider interface {
	BookingHistory(ctx context.Context, userID, authToken string) ([]models.Booking, error)
}

// ChatService routes free-text messages to intent handlers.
type ChatService interface {
	HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Classifier   *Classifier
	ContextStore ContextStore
	PackageRepo  repository.PackageRepository
	Bookings     BookingProvider
	Logger       *zap.Logger
}

const fallbackReply = "I'm sorry, I didn't understand that. Could you please rephrase your question?"

var (
	priceRe  = regexp.MustCompile(`\d{4,6}`)
	ratingRe = regexp.MustCompile(`\b([1-5])\b`)
	destRe   = regexp.MustCompile(`\b(?:in|to|around|near)\s+([a-z]+)\b`)
)

// HandleMessage classifies the message and dispatches to the matching
// intent handler. A pending rating context takes priority over
// classification.
func (s *DefaultChatService) HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error) {
	userID := req.UserID
	if userID == "" {
		userID = "default"
	}

	chatCtx, err := s.ContextStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}
	if chatCtx.AwaitingRating {
		if err := s.ContextStore.Clear(ctx, userID); err != nil {
			s.Logger.Warn("failed to clear chat context", zap.Error(err))
		}
		return s.captureRating(req.Message), nil
	}

	intent, score := s.Classifier.Classify(req.Message)
	s.Logger.Debug("classified chat message",
		zap.String("user_id", userID),
		zap.String("intent", intent),
		zap.Float64("score", score))
	if intent == "" {
		return &models.ChatReply{Reply: fallbackReply}, nil
	}

	// The feedback intent opens a rating follow-up; every other intent
	// drops any stale context.
	if intent == IntentFeedback {
		if err := s.ContextStore.Set(ctx, userID, &models.ChatContext{AwaitingRating: true}); err != nil {
			s.Logger.Warn("failed to save chat context", zap.Error(err))
		}
	} else if err := s.ContextStore.Clear(ctx, userID); err != nil {
		s.Logger.Warn("failed to clear chat context", zap.Error(err))
	}

	msg := strings.ToLower(req.Message)
	switch intent {
	case IntentPackages:
		return s.handlePackages(ctx, msg)
	case IntentBookings:
		return s.handleBookings(ctx, userID, req.AuthToken)
	case IntentFAQ:
		return s.handleFAQ(msg), nil
	case IntentFeedback:
		return s.handleFeedback(req.Message), nil
	case IntentCompare:
		return s.handleCompare(ctx, msg)
	case IntentRecommend:
		return s.handleRecommend(ctx, msg)
	case IntentCancel:
		return s.handleCancel(msg), nil
	default:
		return &models.ChatReply{Reply: fallbackReply}, nil
	}
}

// handlePackages answers catalog queries, with an optional price or
// destination filter pulled out of the message. A price bound wins over
// a destination mention when the message carries both.
func (s *DefaultChatService) handlePackages(ctx context.Context, msg string) (*models.ChatReply, error) {
	var packages []models.TravelPackage
	var err error
	var title string

	lower, upper, hasLimit := extractPriceLimits(msg)
	dest := destRe.FindStringSubmatch(msg)
	switch {
	case hasLimit && lower > 0 && upper > 0:
		packages, err = s.PackageRepo.ByPriceRange(ctx, lower, upper)
		title = fmt.Sprintf("Packages between ₹%.0f and ₹%.0f:", lower, upper)
	case hasLimit && upper > 0:
		packages, err = s.PackageRepo.ByPriceBelow(ctx, upper)
		title = fmt.Sprintf("Packages under ₹%.0f:", upper)
	case hasLimit && lower > 0:
		packages, err = s.PackageRepo.ByPriceAbove(ctx, lower)
		title = fmt.Sprintf("Packages above ₹%.0f:", lower)
	case dest != nil:
		packages, err = s.PackageRepo.ByDestination(ctx, dest[1])
		title = fmt.Sprintf("Packages around %s:", dest[1])
	default:
		packages, err = s.PackageRepo.All(ctx, 10)
		title = "Here are some available travel packages:"
	}
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	if len(packages) == 0 {
		return &models.ChatReply{Reply: "No travel packages found for that request."}, nil
	}
	return &models.ChatReply{Reply: formatPackageList(title, packages)}, nil
}

// handleBookings summarizes the user's own bookings and their statuses,
// querying the upstream API with the caller's token.
func (s *DefaultChatService) handleBookings(ctx context.Context, userID, authToken string) (*models.ChatReply, error) {
	history, err := s.Bookings.BookingHistory(ctx, userID, authToken)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	var b strings.Builder
	count := 0
	for i := range history {
		bk := &history[i]
		if bk.User.ID != userID || bk.Package.ID == "" {
			continue
		}
		count++
		fmt.Fprintf(&b, "• %s (%s) – %s\n", bk.Package.Title, bk.Package.Destination, bk.Status)
	}
	if count == 0 {
		return &models.ChatReply{Reply: "You have no bookings yet. Ask me to recommend a trip!"}, nil
	}
	return &models.ChatReply{Reply: "Your bookings:\n" + strings.TrimRight(b.String(), "\n")}, nil
}

// faqAnswers holds the canned FAQ responses keyed by topic keyword.
var faqAnswers = []struct {
	keywords []string
	answer   string
}{
	{[]string{"payment", "pay"}, "We accept credit cards, debit cards, UPI and net banking. Payments are processed securely at booking time."},
	{[]string{"discount", "offer"}, "Seasonal offers appear on the packages page. Sign up for email updates to hear about discounts first."},
	{[]string{"login", "logout", "account", "register", "sign"}, "You can register or sign in from the account page. Use 'forgot password' if you are locked out."},
	{[]string{"support", "help", "contact", "complaint", "care"}, "Our support team is available at support@voyago.example, 9am-6pm every day."},
}

func (s *DefaultChatService) handleFAQ(msg string) *models.ChatReply {
	for _, faq := range faqAnswers {
		for _, kw := range faq.keywords {
			if strings.Contains(msg, kw) {
				return &models.ChatReply{Reply: faq.answer + "\n\nIf you need more assistance, please contact our support team."}
			}
		}
	}
	return &models.ChatReply{Reply: "I'm sorry, I don't have an answer to that right now. Please contact our support team."}
}

// handleFeedback invites a rating; if the message already carries one it
// is captured immediately.
func (s *DefaultChatService) handleFeedback(message string) *models.ChatReply {
	if ratingRe.MatchString(message) {
		return s.captureRating(message)
	}
	return &models.ChatReply{Reply: "I'd love to hear your feedback! How would you rate your overall experience, from 1 to 5?"}
}

// captureRating parses a 1-5 rating out of the follow-up message.
func (s *DefaultChatService) captureRating(message string) *models.ChatReply {
	m := ratingRe.FindStringSubmatch(message)
	if m == nil {
		return &models.ChatReply{Reply: "Thank you for sharing your feedback! If you'd like to give a star rating (1-5), please let me know."}
	}
	stars, _ := strconv.Atoi(m[1])
	switch {
	case stars >= 4:
		return &models.ChatReply{Reply: fmt.Sprintf("Wonderful! Thank you for the %d-star rating!", stars)}
	case stars == 3:
		return &models.ChatReply{Reply: fmt.Sprintf("Thanks for the %d-star rating! We appreciate your feedback.", stars)}
	default:
		return &models.ChatReply{Reply: fmt.Sprintf("Thank you for the %d-star rating. We're sorry your experience wasn't perfect.", stars)}
	}
}

// handleCompare puts two named packages side by side.
func (s *DefaultChatService) handleCompare(ctx context.Context, msg string) (*models.ChatReply, error) {
	packages, err := s.PackageRepo.All(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	var mentioned []models.TravelPackage
	for i := range packages {
		p := &packages[i]
		title := strings.ToLower(p.Title)
		dest := strings.ToLower(p.Destination)
		if (title != "" && strings.Contains(msg, title)) || (dest != "" && strings.Contains(msg, dest)) {
			mentioned = append(mentioned, *p)
			if len(mentioned) == 2 {
				break
			}
		}
	}
	if len(mentioned) < 2 {
		return &models.ChatReply{Reply: "Please name the two packages or destinations you'd like me to compare."}, nil
	}
	a, b := mentioned[0], mentioned[1]
	reply := fmt.Sprintf(
		"Comparison:\n• %s (%s) – ₹%.0f, %s, %d slots left\n• %s (%s) – ₹%.0f, %s, %d slots left",
		a.Title, a.Destination, a.Price, a.Duration, a.Availability,
		b.Title, b.Destination, b.Price, b.Duration, b.Availability,
	)
	return &models.ChatReply{Reply: reply}, nil
}

// handleRecommend suggests packages by budget hints, falling back to a
// random sample.
func (s *DefaultChatService) handleRecommend(ctx context.Context, msg string) (*models.ChatReply, error) {
	var packages []models.TravelPackage
	var err error
	var title string

	switch {
	case strings.Contains(msg, "budget") || strings.Contains(msg, "cheap") || strings.Contains(msg, "affordable"):
		packages, err = s.PackageRepo.ByPriceBelow(ctx, 50000)
		title = "Budget-friendly packages:"
	case strings.Contains(msg, "luxury") || strings.Contains(msg, "expensive") || strings.Contains(msg, "premium"):
		packages, err = s.PackageRepo.ByPriceAbove(ctx, 100000)
		title = "Luxury packages:"
	default:
		packages, err = s.PackageRepo.Sample(ctx, 5)
		title = "Recommended trips for you:"
	}
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	if len(packages) == 0 {
		return &models.ChatReply{Reply: "Sorry, no packages match your request currently."}, nil
	}
	return &models.ChatReply{Reply: formatPackageList(title, packages)}, nil
}

func (s *DefaultChatService) handleCancel(msg string) *models.ChatReply {
	if strings.Contains(msg, "refund") || strings.Contains(msg, "money back") {
		return &models.ChatReply{Reply: "Refunds are processed within 5-7 business days after a successful cancellation. Please check your registered email for updates."}
	}
	return &models.ChatReply{Reply: "To cancel your booking, please visit the 'My Bookings' section in your account or contact our support team. Cancellations are subject to our policy."}
}

// extractPriceLimits pulls price bounds out of a message. hasLimit is
// false when the message carries no usable number.
func extractPriceLimits(msg string) (lower, upper float64, hasLimit bool) {
	matches := priceRe.FindAllString(msg, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}
	numbers := make([]float64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseFloat(m, 64)
		if err == nil {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return 0, 0, false
	}
	if len(numbers) >= 2 {
		lo, hi := numbers[0], numbers[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}
	n := numbers[0]
	switch {
	case strings.Contains(msg, "under") || strings.Contains(msg, "below") || strings.Contains(msg, "less than"):
		return 0, n, true
	case strings.Contains(msg, "above") || strings.Contains(msg, "over") || strings.Contains(msg, "more than") || strings.Contains(msg, "greater than"):
		return n, 0, true
	default:
		return 0, n, true
	}
}

func formatPackageList(title string, packages []models.TravelPackage) string {
	var b strings.Builder
	b.WriteString(title)
	for i := range packages {
		p := &packages[i]
		fmt.Fprintf(&b, "\n• %s (%s) – ₹%.0f", p.Title, p.Destination, p.Price)
	}
	return b.String()
}
