package recommend

import (
	"reflect"
	"testing"

	"voyago/models"
)

func catalogOf(ids ...string) []models.TravelPackage {
	pkgs := make([]models.TravelPackage, len(ids))
	for i, id := range ids {
		pkgs[i] = models.TravelPackage{ID: id, Title: "Package " + id, Availability: 5}
	}
	return pkgs
}

func TestGetRecommendationsColdStart(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	all := []models.Booking{
		booking("u1", "p1", 0),
		booking("u2", "p1", 0),
		booking("u3", "p2", 0),
	}

	got := e.GetRecommendations("Z", nil, all, catalogOf("p1", "p2", "p3"))
	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	if !reflect.DeepEqual(ids, []string{"p1", "p2"}) {
		t.Errorf("cold-start recommendations = %v, want [p1 p2]", ids)
	}
}

func TestGetRecommendationsExcludesBookedAndDuplicates(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	userBookings := []models.Booking{booking("A", "p1", 0)}
	all := []models.Booking{
		booking("A", "p1", 0),
		booking("B", "p1", 0),
		booking("B", "p2", 0),
		booking("C", "p3", 0),
	}

	got := e.GetRecommendations("A", userBookings, all, catalogOf("p1", "p2", "p3"))
	if len(got) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	seen := make(map[string]struct{})
	for _, p := range got {
		if p.ID == "p1" {
			t.Error("recommendations contain an already booked package")
		}
		if _, dup := seen[p.ID]; dup {
			t.Errorf("duplicate recommendation %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	if _, ok := seen["p2"]; !ok {
		t.Errorf("expected p2 among recommendations, got %v", got)
	}
}

func TestGetRecommendationsNoBookingData(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	// Nobody has booked anything yet, so popularity has no signal and
	// the catalog itself fills in.
	got := e.GetRecommendations("Z", nil, nil, catalogOf("p1", "p2", "p3"))
	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	if !reflect.DeepEqual(ids, []string{"p1", "p2", "p3"}) {
		t.Errorf("recommendations over an unbooked catalog = %v, want [p1 p2 p3]", ids)
	}
}

func TestGetRecommendationsOnlyOwnBookings(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	userBookings := []models.Booking{booking("A", "p1", 0)}

	got := e.GetRecommendations("A", userBookings, userBookings, catalogOf("p1", "p2", "p3"))
	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	if !reflect.DeepEqual(ids, []string{"p2", "p3"}) {
		t.Errorf("recommendations with no co-bookers = %v, want [p2 p3]", ids)
	}
}

func TestGetRecommendationsEmptyCatalog(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	if got := e.GetRecommendations("A", nil, nil, nil); len(got) != 0 {
		t.Errorf("recommendations with empty catalog = %v, want none", got)
	}
}

func TestGetRecommendationsEverythingBooked(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	userBookings := []models.Booking{
		booking("A", "p1", 0),
		booking("A", "p2", 0),
	}
	got := e.GetRecommendations("A", userBookings, userBookings, catalogOf("p1", "p2"))
	if len(got) != 0 {
		t.Errorf("recommendations with fully booked catalog = %v, want none", got)
	}
}

func TestGetRecommendationsMaxResults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = 2
	e := newTestEngine(cfg)
	all := []models.Booking{
		booking("u1", "p1", 0),
		booking("u2", "p2", 0),
		booking("u3", "p3", 0),
		booking("u4", "p4", 0),
	}

	got := e.GetRecommendations("Z", nil, all, catalogOf("p1", "p2", "p3", "p4"))
	if len(got) != 2 {
		t.Errorf("got %d recommendations, want 2", len(got))
	}
}

func TestGetRecommendationsFallsBackToPopularity(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	// The user's only neighbor shares no packages, so every personalized
	// strategy comes up empty and popularity takes over.
	userBookings := []models.Booking{booking("A", "p1", 0)}
	all := []models.Booking{
		booking("A", "p1", 0),
		booking("B", "p2", 0),
	}
	catalog := []models.TravelPackage{
		{ID: "p1", Title: "Silent Valley", Availability: 5},
		{ID: "p2", Title: "Thar Expedition", Availability: 5},
	}

	got := e.GetRecommendations("A", userBookings, all, catalog)
	if len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("fallback recommendations = %v, want [p2]", got)
	}
}

func TestCollaborativeFiltering(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	bookings := []models.Booking{
		booking("A", "p1", 0),
		booking("B", "p1", 0),
		booking("B", "p2", 0),
		booking("C", "p3", 0),
	}

	got := e.CollaborativeFiltering("A", bookings)
	if !reflect.DeepEqual(got, []string{"p2"}) {
		t.Errorf("CollaborativeFiltering() = %v, want [p2]", got)
	}
}

func TestDedupeUnbooked(t *testing.T) {
	ids := []string{"p1", "p2", "p1", "p3", "p2"}
	got := dedupeUnbooked(ids, set("p3"))
	if !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Errorf("dedupeUnbooked() = %v, want [p1 p2]", got)
	}
}
