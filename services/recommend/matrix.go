package recommend

import (
	"math"
	"sort"
)

// matrixCF ranks users by cosine similarity between rows of a dense
// user×package 0/1 incidence matrix and unions the unbooked packages
// held by the nearest users. It only runs on populations large enough
// to justify it and skips entirely when a dimension is too large for
// dense computation.
func (e *Engine) matrixCF(userID string, inc *incidence) []string {
	users := inc.userIDs()
	pkgs := inc.packageIDs()
	if len(users) < e.cfg.MatrixMinUsers || len(pkgs) < e.cfg.MatrixMinPackages {
		return nil
	}
	if len(users) >= e.cfg.MatrixMaxDim || len(pkgs) >= e.cfg.MatrixMaxDim {
		return nil
	}

	targetRow := -1
	for i, uid := range users {
		if uid == userID {
			targetRow = i
			break
		}
	}
	if targetRow < 0 {
		return nil
	}

	pkgIndex := make(map[string]int, len(pkgs))
	for i, pid := range pkgs {
		pkgIndex[pid] = i
	}

	rows := make([][]float64, len(users))
	invNorms := make([]float64, len(users))
	for i, uid := range users {
		row := make([]float64, len(pkgs))
		var sum float64
		for pid := range inc.userPackages[uid] {
			row[pkgIndex[pid]] = 1
			sum++
		}
		rows[i] = row
		if sum > 0 {
			invNorms[i] = 1 / math.Sqrt(sum)
		}
	}

	type neighbor struct {
		row int
		sim float64
	}
	var neighbors []neighbor
	if invNorms[targetRow] > 0 {
		for i := range rows {
			if i == targetRow || invNorms[i] == 0 {
				continue
			}
			var dot float64
			for j, v := range rows[targetRow] {
				dot += v * rows[i][j]
			}
			sim := dot * invNorms[targetRow] * invNorms[i]
			if sim > e.cfg.MinSimilarity {
				neighbors = append(neighbors, neighbor{row: i, sim: sim})
			}
		}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].sim != neighbors[j].sim {
			return neighbors[i].sim > neighbors[j].sim
		}
		return users[neighbors[i].row] < users[neighbors[j].row]
	})
	if len(neighbors) > e.cfg.StrategyLimit {
		neighbors = neighbors[:e.cfg.StrategyLimit]
	}

	booked := inc.userPackages[userID]
	var ids []string
	seen := make(map[string]struct{})
	for _, n := range neighbors {
		for j, v := range rows[n.row] {
			if v == 0 {
				continue
			}
			pid := pkgs[j]
			if _, ok := booked[pid]; ok {
				continue
			}
			if _, dup := seen[pid]; dup {
				continue
			}
			seen[pid] = struct{}{}
			ids = append(ids, pid)
		}
	}
	return ids
}
