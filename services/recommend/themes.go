package recommend

import (
	"math"
	"sort"
	"strings"

	"voyago/models"
)

// themeKeywords maps browsing themes to the keywords that qualify a
// package for them.
var themeKeywords = map[string][]string{
	"beach":     {"beach", "island", "coast", "goa", "andaman", "kerala cruise", "bali"},
	"romantic":  {"romantic", "love", "couples", "honeymoon", "paris", "greece"},
	"cultural":  {"cultural", "heritage", "temples", "tradition", "varanasi", "rajasthan", "odisha"},
	"adventure": {"adventure", "safari", "trek", "desert", "leh", "ladakh", "kashmir", "dubai"},
	"luxury":    {"luxury", "resort", "premium", "exclusive", "switzerland", "europe"},
	"nature":    {"nature", "green", "wildlife", "rainforest", "amazon", "kerala", "mountains", "swiss"},
}

// Themes lists the known browsing themes in a stable order.
func Themes() []string {
	themes := make([]string, 0, len(themeKeywords))
	for t := range themeKeywords {
		themes = append(themes, t)
	}
	sort.Strings(themes)
	return themes
}

// TopPackagesByTheme returns up to limit packages matching a theme's
// keywords, ranked by average booking rating. Bookings rated below 3
// are ignored, as are bookings with no rating at all. An unknown theme
// yields an empty list.
func TopPackagesByTheme(theme string, bookings []models.Booking, limit int) []models.ThemePackage {
	keywords, ok := themeKeywords[theme]
	if !ok {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}

	type entry struct {
		pkg   models.TravelPackage
		sum   int
		count int
	}
	matched := make(map[string]*entry)
	for i := range bookings {
		b := &bookings[i]
		if b.Package.ID == "" || b.Rating < 3 {
			continue
		}
		title := strings.ToLower(b.Package.Title)
		desc := strings.ToLower(b.Package.Description)
		hit := false
		for _, kw := range keywords {
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		ent, ok := matched[b.Package.ID]
		if !ok {
			ent = &entry{pkg: b.Package}
			matched[b.Package.ID] = ent
		}
		ent.sum += b.Rating
		ent.count++
	}

	results := make([]models.ThemePackage, 0, len(matched))
	for _, ent := range matched {
		avg := float64(ent.sum) / float64(ent.count)
		results = append(results, models.ThemePackage{
			TravelPackage: ent.pkg,
			Rating:        math.Round(avg*10) / 10,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Rating != results[j].Rating {
			return results[i].Rating > results[j].Rating
		}
		return results[i].ID < results[j].ID
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
