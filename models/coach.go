package models

import "time"

// Coach is a bookable trainer profile owned by a user account.
type Coach struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"` // Account behind this coach profile
	FirstName  string    `bson:"firstName" json:"firstName"`
	LastName   string    `bson:"lastName" json:"lastName"`
	Bio        string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Status     string    `bson:"status" json:"status"`         // "active" | "inactive" | "suspended"
	SportIDs   []string  `bson:"sportIds" json:"sportIds"`     // Sports this coach trains
	HourlyRate float64   `bson:"hourlyRate" json:"hourlyRate"` // Hourly rate in Currency
	Currency   string    `bson:"currency" json:"currency"`
	AutoConfirm bool     `bson:"autoConfirm" json:"autoConfirm"`
	Rating     float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullName returns the coach's display name.
func (c *Coach) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// IsActive reports whether the coach can accept bookings.
func (c *Coach) IsActive() bool {
	return c.Status == "active"
}

// OffersSport reports whether the coach trains the given sport.
func (c *Coach) OffersSport(sportID string) bool {
	for _, id := range c.SportIDs {
		if id == sportID {
			return true
		}
	}
	return false
}
