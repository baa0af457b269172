package models

// Booking status values as reported by the upstream API.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// BookingUser identifies the owner of a booking.
type BookingUser struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username,omitempty" json:"username,omitempty"`
}

// Booking represents one booking record from the upstream API. A booking
// references exactly one user and one package; Rating is 0 when the user
// has not rated the trip.
type Booking struct {
	ID      string        `bson:"id" json:"id"`
	User    BookingUser   `bson:"user" json:"user"`
	Package TravelPackage `bson:"package" json:"package"`
	Date    string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Status  string        `bson:"status" json:"status"`
	Rating  int           `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5, 0 = unrated
	Review  string        `bson:"review,omitempty" json:"review,omitempty"`
}
