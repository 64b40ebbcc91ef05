package models

import "time"

// Facility is a bookable sports venue owned by a provider account.
type Facility struct {
	ID           string    `bson:"id" json:"id"`
	OwnerID      string    `bson:"ownerId" json:"ownerId"` // User account that manages this facility
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Status       string    `bson:"status" json:"status"`             // "active" | "inactive" | "suspended"
	SportIDs     []string  `bson:"sportIds" json:"sportIds"`         // Sports offered at this venue
	PricePerHour float64   `bson:"pricePerHour" json:"pricePerHour"` // Hourly rate in Currency
	Currency     string    `bson:"currency" json:"currency"`
	AutoConfirm  bool      `bson:"autoConfirm" json:"autoConfirm"` // Bookings skip pending and confirm immediately
	Rating       float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the facility can accept bookings.
func (f *Facility) IsActive() bool {
	return f.Status == "active"
}

// OffersSport reports whether the facility is registered for the given sport.
func (f *Facility) OffersSport(sportID string) bool {
	for _, id := range f.SportIDs {
		if id == sportID {
			return true
		}
	}
	return false
}
