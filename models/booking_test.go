package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startHour, endHour int) Booking {
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	return Booking{
		StartTime: day.Add(time.Duration(startHour) * time.Hour),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestOverlaps(t *testing.T) {
	b := interval(10, 12)
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	assert.True(t, b.Overlaps(at(11), at(13)), "partial overlap")
	assert.True(t, b.Overlaps(at(9), at(11)), "partial overlap from before")
	assert.True(t, b.Overlaps(at(9), at(13)), "containment")
	assert.True(t, b.Overlaps(at(10), at(12)), "exact match")
	assert.False(t, b.Overlaps(at(12), at(13)), "back to back after")
	assert.False(t, b.Overlaps(at(8), at(10)), "back to back before")
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.False(t, BookingStatusNoShow.Terminal())
}

func TestCanBeCancelled(t *testing.T) {
	now := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	cutoff := 24 * time.Hour

	b := Booking{Status: BookingStatusConfirmed, StartTime: now.Add(48 * time.Hour)}
	assert.True(t, b.CanBeCancelled(now, cutoff))

	b.StartTime = now.Add(12 * time.Hour)
	assert.False(t, b.CanBeCancelled(now, cutoff), "inside the cutoff window")

	b.StartTime = now.Add(24 * time.Hour)
	assert.True(t, b.CanBeCancelled(now, cutoff), "exactly at the cutoff")

	b.Status = BookingStatusCompleted
	b.StartTime = now.Add(48 * time.Hour)
	assert.False(t, b.CanBeCancelled(now, cutoff), "terminal status")
}

func TestBookingTypeValid(t *testing.T) {
	assert.True(t, BookingTypeFacility.Valid())
	assert.True(t, BookingTypeCoach.Valid())
	assert.True(t, BookingTypeBoth.Valid())
	assert.False(t, BookingType("gym").Valid())
}
