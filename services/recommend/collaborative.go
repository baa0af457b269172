package recommend

import "sort"

// rankCandidates orders candidate scores descending and returns up to
// limit ids. Ties are broken by ascending package id so identical
// snapshots always rank identically.
func rankCandidates(scores map[string]float64, limit int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// userBasedCF recommends packages held by behaviorally similar users.
// Similarity between users is the Jaccard index of their booked-package
// sets; every candidate package accumulates the similarity of each
// similar user holding it. With WeightByRating enabled, a similar
// user's vote for a package is scaled by their rating of it.
func (e *Engine) userBasedCF(userID string, inc *incidence) []string {
	target := inc.userPackages[userID]
	if len(target) == 0 {
		return nil
	}

	scores := make(map[string]float64)
	for _, other := range inc.userIDs() {
		if other == userID {
			continue
		}
		sim := Jaccard(target, inc.userPackages[other])
		if sim <= e.cfg.MinSimilarity {
			continue
		}
		for pid := range inc.userPackages[other] {
			if _, booked := target[pid]; booked {
				continue
			}
			if e.cfg.WeightByRating {
				scores[pid] += sim * float64(inc.rating(other, pid, 3)) / 5
			} else {
				scores[pid] += sim
			}
		}
	}
	return rankCandidates(scores, e.cfg.StrategyLimit)
}

// itemBasedCF recommends packages whose booker sets overlap the booker
// sets of the target user's packages. Candidate packages accumulate the
// Jaccard similarity against every package the user booked.
func (e *Engine) itemBasedCF(userID string, inc *incidence) []string {
	target := inc.userPackages[userID]
	if len(target) == 0 {
		return nil
	}

	scores := make(map[string]float64)
	for pid := range target {
		bookers := inc.packageUsers[pid]
		if len(bookers) == 0 {
			continue
		}
		for _, qid := range inc.packageIDs() {
			if qid == pid {
				continue
			}
			if _, booked := target[qid]; booked {
				continue
			}
			sim := Jaccard(bookers, inc.packageUsers[qid])
			if sim <= e.cfg.MinSimilarity {
				continue
			}
			scores[qid] += sim
		}
	}
	return rankCandidates(scores, e.cfg.StrategyLimit)
}
