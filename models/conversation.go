package models

import "time"

// CounterpartType identifies which side of a booking a conversation connects
// the requester with.
type CounterpartType string

const (
	CounterpartCoach    CounterpartType = "coach"
	CounterpartFacility CounterpartType = "facility"
)

// Conversation is a per-booking chat channel, created once the booking is
// confirmed. One conversation exists per counterpart (coach-side,
// facility-side); the chat transport itself is an external platform.
type Conversation struct {
	ID              string          `bson:"id" json:"id"`
	BookingID       string          `bson:"bookingId" json:"bookingId"`
	UserID          string          `bson:"userId" json:"userId"` // Booking requester
	CounterpartType CounterpartType `bson:"counterpartType" json:"counterpartType"`
	CounterpartID   string          `bson:"counterpartId" json:"counterpartId"` // Coach id or facility id
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
}

// ConversationSet groups a booking's conversations by counterpart type.
type ConversationSet struct {
	Coach    *Conversation `json:"coach,omitempty"`
	Facility *Conversation `json:"facility,omitempty"`
}
