package recommend

import (
	"go.uber.org/zap"

	"voyago/models"
)

// RecommenderService defines the recommendation engine contract invoked
// by the HTTP and chatbot layers.
type RecommenderService interface {
	GetRecommendations(userID string, userBookings, allBookings []models.Booking, catalog []models.TravelPackage) []models.TravelPackage
	CollaborativeFiltering(userID string, bookings []models.Booking) []string
	ContentBasedFiltering(userPackages, allPackages []models.TravelPackage) []string
}

// Engine is the production recommender. It is stateless between
// requests: every call rebuilds its incidence view and vector space
// from the snapshots it is handed, trading latency for freshness.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine returns an engine with the given configuration. Zero-valued
// knobs fall back to defaults.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg.normalized(), logger: logger}
}

// GetRecommendations produces the final ranked package list for a user.
//
// Cold-start users go straight to the popularity fallback. Everyone
// else gets the union of user-based, item-based and matrix
// collaborative filtering plus content-based filtering, deduplicated in
// first-seen order, with popularity as the fallback when the
// personalized strategies come up empty. When popularity has no signal
// either, unbooked catalog entries fill in, in catalog order. The
// result never contains a package the user already booked and never
// contains duplicates.
func (e *Engine) GetRecommendations(userID string, userBookings, allBookings []models.Booking, catalog []models.TravelPackage) []models.TravelPackage {
	inc := buildIncidence(allBookings)

	booked := make(map[string]struct{})
	userPackages := make([]models.TravelPackage, 0, len(userBookings))
	for i := range userBookings {
		b := &userBookings[i]
		if b.Package.ID == "" {
			continue
		}
		if _, ok := booked[b.Package.ID]; ok {
			continue
		}
		booked[b.Package.ID] = struct{}{}
		userPackages = append(userPackages, b.Package)
	}

	var ids []string
	if len(booked) == 0 {
		// Cold start: no history to personalize on.
		e.logger.Debug("cold-start user, using popularity ranking",
			zap.String("user_id", userID))
		ids = popularityRanking(inc, booked, e.cfg.StrategyLimit)
	} else {
		ids = append(ids, e.runStrategy("user_cf", func() []string {
			return e.userBasedCF(userID, inc)
		})...)
		ids = append(ids, e.runStrategy("item_cf", func() []string {
			return e.itemBasedCF(userID, inc)
		})...)
		ids = append(ids, e.runStrategy("matrix_cf", func() []string {
			return e.matrixCF(userID, inc)
		})...)
		ids = append(ids, e.runStrategy("content", func() []string {
			return e.ContentBasedFiltering(userPackages, catalog)
		})...)
	}

	ids = dedupeUnbooked(ids, booked)
	if len(ids) == 0 {
		ids = popularityRanking(inc, booked, e.cfg.StrategyLimit)
	}
	if len(ids) == 0 {
		// Popularity only sees ever-booked packages. With no booking
		// signal at all, hand out unbooked catalog entries as-is.
		for i := range catalog {
			pid := catalog[i].ID
			if pid == "" {
				continue
			}
			if _, ok := booked[pid]; ok {
				continue
			}
			ids = append(ids, pid)
			if len(ids) >= e.cfg.StrategyLimit {
				break
			}
		}
	}

	// Resolve ids against the catalog, dropping ids the catalog no
	// longer knows about.
	catalogMap := make(map[string]*models.TravelPackage, len(catalog))
	for i := range catalog {
		catalogMap[catalog[i].ID] = &catalog[i]
	}
	recommendations := make([]models.TravelPackage, 0, e.cfg.MaxResults)
	for _, id := range ids {
		pkg, ok := catalogMap[id]
		if !ok {
			continue
		}
		recommendations = append(recommendations, *pkg)
		if len(recommendations) >= e.cfg.MaxResults {
			break
		}
	}
	return recommendations
}

// CollaborativeFiltering runs the three collaborative strategies over a
// booking snapshot and returns their concatenated candidate ids,
// deduplicated in first-seen order.
func (e *Engine) CollaborativeFiltering(userID string, bookings []models.Booking) []string {
	inc := buildIncidence(bookings)
	booked := inc.userPackages[userID]

	var ids []string
	ids = append(ids, e.runStrategy("user_cf", func() []string {
		return e.userBasedCF(userID, inc)
	})...)
	ids = append(ids, e.runStrategy("item_cf", func() []string {
		return e.itemBasedCF(userID, inc)
	})...)
	ids = append(ids, e.runStrategy("matrix_cf", func() []string {
		return e.matrixCF(userID, inc)
	})...)
	return dedupeUnbooked(ids, booked)
}

// runStrategy executes one strategy, converting any panic into an empty
// contribution so a single failing strategy never aborts the others.
func (e *Engine) runStrategy(name string, fn func() []string) (ids []string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("recommendation strategy failed",
				zap.String("strategy", name), zap.Any("error", r))
			ids = nil
		}
	}()
	ids = fn()
	e.logger.Debug("strategy produced candidates",
		zap.String("strategy", name), zap.Int("count", len(ids)))
	return ids
}

// dedupeUnbooked removes duplicates preserving first-seen order and
// drops any id the user already booked.
func dedupeUnbooked(ids []string, booked map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := booked[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
