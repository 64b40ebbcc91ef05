package models

import "time"

// Sport is a catalog entry for a bookable sport.
type Sport struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Icon      string    `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SessionPackage is a pre-priced bundle of sessions that overrides hourly-rate
// pricing: the price per session applies regardless of booked duration.
type SessionPackage struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	FacilityID      string    `bson:"facilityId,omitempty" json:"facilityId,omitempty"`
	CoachID         string    `bson:"coachId,omitempty" json:"coachId,omitempty"`
	SessionCount    int       `bson:"sessionCount" json:"sessionCount"`
	PricePerSession float64   `bson:"pricePerSession" json:"pricePerSession"`
	Currency        string    `bson:"currency" json:"currency"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
