package models

import "time"

// AvailableSlot is one hourly slot in the booking window of a day.
type AvailableSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// BookedInterval is the raw time range of an existing booking on a day.
type BookedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateAvailability reports the booked intervals for a calendar day. The
// IsFullyBooked flag is a coarse signal for calendar dimming: it is true as
// soon as any booking exists that day, not an actual capacity check.
type DateAvailability struct {
	Date             string           `json:"date"`
	UnavailableSlots []BookedInterval `json:"unavailableSlots"`
	IsFullyBooked    bool             `json:"isFullyBooked"`
}
