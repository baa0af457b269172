package recommend

import "sort"

// popularityRanking ranks packages by the number of distinct users who
// booked them, excluding ids the target user already holds. It is the
// terminal fallback when no personalized strategy yields candidates.
func popularityRanking(inc *incidence, booked map[string]struct{}, limit int) []string {
	type popular struct {
		id      string
		bookers int
	}
	ranked := make([]popular, 0, len(inc.packageUsers))
	for pid, users := range inc.packageUsers {
		if _, ok := booked[pid]; ok {
			continue
		}
		ranked = append(ranked, popular{id: pid, bookers: len(users)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].bookers != ranked[j].bookers {
			return ranked[i].bookers > ranked[j].bookers
		}
		return ranked[i].id < ranked[j].id
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	ids := make([]string, len(ranked))
	for i, p := range ranked {
		ids[i] = p.id
	}
	return ids
}
