package recommend

// Config controls the recommendation engine. A Config is a plain value
// supplied at construction; the engine holds no other state between
// requests.
//
// Threshold policy: the collaborative strategies share the absolute
// MinSimilarity floor. Content-based filtering uses a dynamic cutoff of
// RelativeCutoff times the best candidate score, never below
// MinSimilarity, because raw cosine magnitudes shrink as the corpus
// grows.
type Config struct {
	// MaxResults caps the final recommendation list.
	MaxResults int

	// StrategyLimit caps the candidates each individual strategy emits.
	StrategyLimit int

	// MinSimilarity is the floor below which similar users, similar
	// items and content matches are discarded.
	MinSimilarity float64

	// RelativeCutoff drops content-based candidates scoring below this
	// fraction of the top candidate.
	RelativeCutoff float64

	// WeightByRating treats a highly rated co-booking as stronger
	// evidence than a poorly rated one during user-based accumulation.
	// Unrated bookings count as a middle rating of 3.
	WeightByRating bool

	// UseBoosts enables the destination, price proximity and
	// availability adjustments on content-based scores.
	UseBoosts bool

	// MaxFeatures bounds the TF-IDF vocabulary.
	MaxFeatures int

	// Matrix strategy gates: it only runs when the population has at
	// least MatrixMinUsers users and MatrixMinPackages packages, and is
	// skipped entirely once either dimension reaches MatrixMaxDim,
	// where dense computation stops being worthwhile.
	MatrixMinUsers    int
	MatrixMinPackages int
	MatrixMaxDim      int
}

// DefaultConfig returns the production engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxResults:        4,
		StrategyLimit:     10,
		MinSimilarity:     0.05,
		RelativeCutoff:    0.2,
		WeightByRating:    false,
		UseBoosts:         true,
		MaxFeatures:       5000,
		MatrixMinUsers:    3,
		MatrixMinPackages: 3,
		MatrixMaxDim:      500,
	}
}

// normalized fills zero-valued knobs with defaults so a partially
// specified Config stays usable.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.StrategyLimit <= 0 {
		c.StrategyLimit = def.StrategyLimit
	}
	if c.MinSimilarity <= 0 {
		c.MinSimilarity = def.MinSimilarity
	}
	if c.RelativeCutoff <= 0 {
		c.RelativeCutoff = def.RelativeCutoff
	}
	if c.MaxFeatures <= 0 {
		c.MaxFeatures = def.MaxFeatures
	}
	if c.MatrixMinUsers <= 0 {
		c.MatrixMinUsers = def.MatrixMinUsers
	}
	if c.MatrixMinPackages <= 0 {
		c.MatrixMinPackages = def.MatrixMinPackages
	}
	if c.MatrixMaxDim <= 0 {
		c.MatrixMaxDim = def.MatrixMaxDim
	}
	return c
}
