package models

// TravelPackage represents a catalog entry served by the upstream API.
// The engine treats packages as read-only; optional text fields may be
// empty when the upstream record is incomplete.
type TravelPackage struct {
	ID           string  `bson:"id" json:"id"`
	Title        string  `bson:"title" json:"title"`
	Description  string  `bson:"description" json:"description"`
	Destination  string  `bson:"destination" json:"destination"`
	Price        float64 `bson:"price" json:"price"`
	Duration     string  `bson:"duration" json:"duration"`
	Availability int     `bson:"availability" json:"availability"`
}
