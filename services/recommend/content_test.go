package recommend

import (
	"math"
	"reflect"
	"testing"

	"voyago/models"
)

func TestContentBasedFilteringNoHistory(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	catalog := []models.TravelPackage{{ID: "p1", Title: "Goa Beach Paradise"}}
	if got := e.ContentBasedFiltering(nil, catalog); got != nil {
		t.Errorf("ContentBasedFiltering() with no history = %v, want nil", got)
	}
}

func TestContentBasedFilteringAllBooked(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	pkg := models.TravelPackage{ID: "p1", Title: "Goa Beach Paradise", Destination: "Goa"}
	if got := e.ContentBasedFiltering([]models.TravelPackage{pkg}, []models.TravelPackage{pkg}); got != nil {
		t.Errorf("ContentBasedFiltering() with fully booked catalog = %v, want nil", got)
	}
}

func TestContentBasedFiltering(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	userPackages := []models.TravelPackage{{
		ID:           "p1",
		Title:        "Goa Beach Paradise",
		Description:  "Relax on beautiful beaches",
		Destination:  "Goa",
		Price:        30000,
		Availability: 10,
	}}
	catalog := []models.TravelPackage{
		userPackages[0],
		{
			ID:           "g1",
			Title:        "Goa Beach Retreat",
			Description:  "Sunny beaches with nightlife",
			Destination:  "Goa",
			Price:        32000,
			Availability: 5,
		},
		{
			ID:           "m1",
			Title:        "Ladakh Mountain Trek",
			Description:  "High altitude adventure",
			Destination:  "Ladakh",
			Price:        45000,
			Availability: 5,
		},
	}

	got := e.ContentBasedFiltering(userPackages, catalog)
	if !reflect.DeepEqual(got, []string{"g1"}) {
		t.Errorf("ContentBasedFiltering() = %v, want [g1]", got)
	}
}

func TestContentBasedFilteringAvailabilityPenalty(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	userPackages := []models.TravelPackage{{
		ID:          "p1",
		Title:       "Sunny beach escape",
		Destination: "Goa",
	}}
	// The sold-out package comes first in the catalog; the penalty must
	// push it behind the otherwise identical available one.
	catalog := []models.TravelPackage{
		{ID: "b1", Title: "Sunny beach resort", Destination: "Goa", Availability: 0},
		{ID: "a1", Title: "Sunny beach resort", Destination: "Goa", Availability: 5},
	}

	got := e.ContentBasedFiltering(userPackages, catalog)
	if !reflect.DeepEqual(got, []string{"a1", "b1"}) {
		t.Errorf("ContentBasedFiltering() = %v, want [a1 b1]", got)
	}
}

func TestBoostFactor(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	dest := set("goa")
	tests := []struct {
		name     string
		pkg      models.TravelPackage
		avgPrice float64
		want     float64
	}{
		{
			"no adjustments",
			models.TravelPackage{Destination: "Ladakh", Availability: 5},
			0, 1,
		},
		{
			"destination overlap",
			models.TravelPackage{Destination: "Goa", Availability: 5},
			0, destinationBoost,
		},
		{
			"exact price match",
			models.TravelPackage{Destination: "Ladakh", Price: 30000, Availability: 5},
			30000, 1 + priceBoostMax,
		},
		{
			"price outside window",
			models.TravelPackage{Destination: "Ladakh", Price: 90000, Availability: 5},
			30000, 1,
		},
		{
			"sold out",
			models.TravelPackage{Destination: "Ladakh"},
			0, unavailablePenalty,
		},
		{
			"combined",
			models.TravelPackage{Destination: "Goa", Price: 30000},
			30000, destinationBoost * (1 + priceBoostMax) * unavailablePenalty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.boostFactor(&tt.pkg, dest, tt.avgPrice)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("boostFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackageDoc(t *testing.T) {
	p := models.TravelPackage{Title: "Goa Beach", Destination: "Goa", Duration: "5 days"}
	if got := packageDoc(&p); got != "Goa Beach Goa 5 days" {
		t.Errorf("packageDoc() = %q", got)
	}
	empty := models.TravelPackage{}
	if got := packageDoc(&empty); got != "" {
		t.Errorf("packageDoc() of empty package = %q, want empty", got)
	}
}
