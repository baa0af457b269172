package recommend

import (
	"reflect"
	"testing"

	"voyago/models"
)

func TestPopularityRanking(t *testing.T) {
	inc := buildIncidence([]models.Booking{
		booking("u1", "p1", 0),
		booking("u2", "p1", 0),
		booking("u3", "p1", 0),
		booking("u1", "p2", 0),
		booking("u2", "p2", 0),
		booking("u1", "p3", 0),
	})

	got := popularityRanking(inc, nil, 0)
	want := []string{"p1", "p2", "p3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("popularityRanking() = %v, want %v", got, want)
	}
}

func TestPopularityRankingExcludesBooked(t *testing.T) {
	inc := buildIncidence([]models.Booking{
		booking("u1", "p1", 0),
		booking("u2", "p1", 0),
		booking("u1", "p2", 0),
	})

	got := popularityRanking(inc, set("p1"), 0)
	if !reflect.DeepEqual(got, []string{"p2"}) {
		t.Errorf("popularityRanking() = %v, want [p2]", got)
	}
}

func TestPopularityRankingTieBreak(t *testing.T) {
	inc := buildIncidence([]models.Booking{
		booking("u1", "p9", 0),
		booking("u2", "p2", 0),
		booking("u3", "p5", 0),
	})

	got := popularityRanking(inc, nil, 0)
	want := []string{"p2", "p5", "p9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("popularityRanking() tie order = %v, want %v", got, want)
	}
}

func TestPopularityRankingLimit(t *testing.T) {
	inc := buildIncidence([]models.Booking{
		booking("u1", "p1", 0),
		booking("u1", "p2", 0),
		booking("u1", "p3", 0),
	})

	if got := popularityRanking(inc, nil, 2); len(got) != 2 {
		t.Errorf("popularityRanking(limit=2) returned %d ids, want 2", len(got))
	}
}
