package recommend

import (
	"reflect"
	"testing"

	"voyago/models"
)

func themedBooking(uid, pid, title string, rating int) models.Booking {
	return models.Booking{
		User:    models.BookingUser{ID: uid},
		Package: models.TravelPackage{ID: pid, Title: title},
		Status:  models.BookingCompleted,
		Rating:  rating,
	}
}

func TestThemes(t *testing.T) {
	want := []string{"adventure", "beach", "cultural", "luxury", "nature", "romantic"}
	if got := Themes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Themes() = %v, want %v", got, want)
	}
}

func TestTopPackagesByTheme(t *testing.T) {
	bookings := []models.Booking{
		themedBooking("u1", "p1", "Goa Beach Paradise", 5),
		themedBooking("u2", "p1", "Goa Beach Paradise", 4),
		themedBooking("u3", "p2", "Andaman Island Escape", 3),
		themedBooking("u4", "p3", "Ladakh Adventure Trek", 5),
	}

	got := TopPackagesByTheme("beach", bookings, 5)
	if len(got) != 2 {
		t.Fatalf("got %d packages, want 2: %v", len(got), got)
	}
	if got[0].ID != "p1" || got[0].Rating != 4.5 {
		t.Errorf("top package = %s rated %v, want p1 rated 4.5", got[0].ID, got[0].Rating)
	}
	if got[1].ID != "p2" || got[1].Rating != 3 {
		t.Errorf("second package = %s rated %v, want p2 rated 3", got[1].ID, got[1].Rating)
	}
}

func TestTopPackagesByThemeDropsLowRatings(t *testing.T) {
	bookings := []models.Booking{
		themedBooking("u1", "p1", "Goa Beach Paradise", 2),
		themedBooking("u2", "p2", "Andaman Island Escape", 0),
	}
	if got := TopPackagesByTheme("beach", bookings, 5); len(got) != 0 {
		t.Errorf("TopPackagesByTheme() = %v, want none below the rating floor", got)
	}
}

func TestTopPackagesByThemeUnknownTheme(t *testing.T) {
	bookings := []models.Booking{themedBooking("u1", "p1", "Goa Beach Paradise", 5)}
	if got := TopPackagesByTheme("space", bookings, 5); got != nil {
		t.Errorf("TopPackagesByTheme() for unknown theme = %v, want nil", got)
	}
}

func TestTopPackagesByThemeLimit(t *testing.T) {
	bookings := []models.Booking{
		themedBooking("u1", "p1", "Goa Beach Paradise", 5),
		themedBooking("u1", "p2", "Andaman Island Escape", 5),
		themedBooking("u1", "p3", "Bali Beach Villas", 5),
	}
	if got := TopPackagesByTheme("beach", bookings, 2); len(got) != 2 {
		t.Errorf("got %d packages, want 2", len(got))
	}
}
