package recommend

import (
	"sort"

	"voyago/models"
)

// incidence is the user↔package co-occurrence view derived from a
// booking snapshot. It is rebuilt fresh for every request because the
// underlying booking data can change between calls.
type incidence struct {
	// userPackages maps a user id to the set of package ids they booked.
	userPackages map[string]map[string]struct{}
	// packageUsers is the inverse: package id to the set of booker ids.
	packageUsers map[string]map[string]struct{}
	// ratings maps user id and package id to the highest rating that
	// user gave the package, 0 when unrated.
	ratings map[string]map[string]int
}

// buildIncidence derives the incidence view from a booking list.
// Bookings with a missing user or package id are skipped silently, as
// upstream data may be incomplete.
func buildIncidence(bookings []models.Booking) *incidence {
	inc := &incidence{
		userPackages: make(map[string]map[string]struct{}),
		packageUsers: make(map[string]map[string]struct{}),
		ratings:      make(map[string]map[string]int),
	}
	for i := range bookings {
		b := &bookings[i]
		uid, pid := b.User.ID, b.Package.ID
		if uid == "" || pid == "" {
			continue
		}
		if inc.userPackages[uid] == nil {
			inc.userPackages[uid] = make(map[string]struct{})
			inc.ratings[uid] = make(map[string]int)
		}
		inc.userPackages[uid][pid] = struct{}{}
		if b.Rating > inc.ratings[uid][pid] {
			inc.ratings[uid][pid] = b.Rating
		}
		if inc.packageUsers[pid] == nil {
			inc.packageUsers[pid] = make(map[string]struct{})
		}
		inc.packageUsers[pid][uid] = struct{}{}
	}
	return inc
}

// userIDs returns all user ids in ascending order.
func (inc *incidence) userIDs() []string {
	ids := make([]string, 0, len(inc.userPackages))
	for id := range inc.userPackages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// packageIDs returns all package ids in ascending order.
func (inc *incidence) packageIDs() []string {
	ids := make([]string, 0, len(inc.packageUsers))
	for id := range inc.packageUsers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// rating returns the rating user uid gave package pid, or fallback when
// the booking was unrated.
func (inc *incidence) rating(uid, pid string, fallback int) int {
	if r := inc.ratings[uid][pid]; r > 0 {
		return r
	}
	return fallback
}
