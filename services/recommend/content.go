package recommend

import (
	"math"
	"sort"
	"strings"

	"voyago/models"
)

// Multiplicative adjustments applied on top of the raw cosine score
// when Config.UseBoosts is set.
const (
	destinationBoost   = 1.2
	priceBoostMax      = 0.1
	priceBoostWindow   = 0.5 // price within 50% of the user's average
	unavailablePenalty = 0.7
)

// packageDoc concatenates the text fields a package contributes to the
// TF-IDF corpus. Missing fields collapse to nothing.
func packageDoc(p *models.TravelPackage) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Title, p.Description, p.Destination, p.Duration} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// ContentBasedFiltering ranks unbooked catalog packages by textual and
// attribute similarity to the user's booking history. It returns
// package ids, most similar first, and degrades to an empty list when
// no profile can be built or the vectorizer cannot be fitted.
func (e *Engine) ContentBasedFiltering(userPackages, allPackages []models.TravelPackage) []string {
	if len(userPackages) == 0 {
		return nil
	}

	// Build the user profile: one text blob over every booked package,
	// the set of destination tokens, and the average booked price.
	booked := make(map[string]struct{}, len(userPackages))
	destTokens := make(map[string]struct{})
	var profileParts []string
	var priceSum float64
	var priceCount int
	for i := range userPackages {
		p := &userPackages[i]
		if p.ID != "" {
			booked[p.ID] = struct{}{}
		}
		if doc := packageDoc(p); doc != "" {
			profileParts = append(profileParts, doc)
		}
		for _, tok := range tokenize(p.Destination) {
			destTokens[tok] = struct{}{}
		}
		if p.Price > 0 {
			priceSum += p.Price
			priceCount++
		}
	}
	profile := strings.Join(profileParts, " ")
	if profile == "" {
		return nil
	}
	var avgPrice float64
	if priceCount > 0 {
		avgPrice = priceSum / float64(priceCount)
	}

	// Corpus over the catalog minus already-booked entries, keeping
	// catalog order for deterministic tie-breaking.
	candidates := make([]*models.TravelPackage, 0, len(allPackages))
	for i := range allPackages {
		p := &allPackages[i]
		if p.ID == "" {
			continue
		}
		if _, ok := booked[p.ID]; ok {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}

	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, profile)
	for _, p := range candidates {
		corpus = append(corpus, packageDoc(p))
	}

	vectorizer := NewVectorizer(e.cfg.MaxFeatures, 2)
	if err := vectorizer.Fit(corpus); err != nil {
		return nil
	}
	query := vectorizer.Transform(profile)

	type scored struct {
		idx   int
		id    string
		score float64
	}
	results := make([]scored, 0, len(candidates))
	var top float64
	for i, p := range candidates {
		score := Cosine(query, vectorizer.Transform(packageDoc(p)))
		if e.cfg.UseBoosts {
			score *= e.boostFactor(p, destTokens, avgPrice)
		}
		if score > top {
			top = score
		}
		results = append(results, scored{idx: i, id: p.ID, score: score})
	}

	// Dynamic threshold relative to the best match, with an absolute
	// floor so noise never makes the cut.
	threshold := math.Max(e.cfg.MinSimilarity, e.cfg.RelativeCutoff*top)
	kept := results[:0]
	for _, r := range results {
		if r.score >= threshold {
			kept = append(kept, r)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].idx < kept[j].idx
	})
	if len(kept) > e.cfg.StrategyLimit {
		kept = kept[:e.cfg.StrategyLimit]
	}
	ids := make([]string, len(kept))
	for i, r := range kept {
		ids[i] = r.id
	}
	return ids
}

// boostFactor adjusts a raw similarity score by destination overlap,
// price proximity and availability.
func (e *Engine) boostFactor(p *models.TravelPackage, destTokens map[string]struct{}, avgPrice float64) float64 {
	factor := 1.0
	for _, tok := range tokenize(p.Destination) {
		if _, ok := destTokens[tok]; ok {
			factor *= destinationBoost
			break
		}
	}
	if avgPrice > 0 && p.Price > 0 {
		diff := math.Abs(p.Price-avgPrice) / avgPrice
		if diff <= priceBoostWindow {
			// Full boost at an exact price match, shrinking linearly
			// to nothing at the window edge.
			factor *= 1 + priceBoostMax*(1-diff/priceBoostWindow)
		}
	}
	if p.Availability <= 0 {
		factor *= unavailablePenalty
	}
	return factor
}
