// File: services/booking/availability.go
package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingRepo "gamedey/database/repository/booking"
	"gamedey/models"
)

// Bookable hours run 06:00 to 22:00 local time, so a day exposes 16 hourly
// slots.
const (
	dayStartHour = 6
	dayEndHour   = 22
)

// DefaultAvailabilityService answers slot and calendar queries from the
// booking store. Only pending and confirmed bookings block availability.
type DefaultAvailabilityService struct {
	Repo bookingRepo.BookingRepository
}

func NewAvailabilityService(repo bookingRepo.BookingRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Repo: repo}
}

// GetSlots returns the 16 hourly slots of the given date with each one marked
// available or not. A slot is unavailable when any active booking on the
// facility or coach overlaps it.
func (s *DefaultAvailabilityService) GetSlots(ctx context.Context, facilityID, coachID string, date time.Time) ([]models.AvailableSlot, error) {
	if facilityID == "" && coachID == "" {
		return nil, NewInvalidArgumentError("facilityId or coachId is required")
	}

	dayStart, dayEnd := dayBounds(date)
	booked, err := s.Repo.FindOverlapping(ctx, facilityID, coachID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date.Format("2006-01-02"), err)
	}

	slots := make([]models.AvailableSlot, 0, dayEndHour-dayStartHour)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		end := start.Add(time.Hour)
		slots = append(slots, models.AvailableSlot{
			Start:     start,
			End:       end,
			Available: !anyOverlaps(booked, start, end),
		})
	}
	return slots, nil
}

// GetCalendar returns the sorted distinct dates in [startDate, endDate] that
// have at least one active booking. Any booking at all marks the whole date,
// which matches the coarse per-date dimming clients render.
func (s *DefaultAvailabilityService) GetCalendar(ctx context.Context, facilityID, coachID string, startDate, endDate time.Time) ([]string, error) {
	if facilityID == "" && coachID == "" {
		return nil, NewInvalidArgumentError("facilityId or coachId is required")
	}
	if endDate.Before(startDate) {
		return nil, NewInvalidArgumentError("endDate must not be before startDate")
	}

	rangeStart, _ := dayBounds(startDate)
	_, rangeEnd := dayBounds(endDate)
	booked, err := s.Repo.FindOverlapping(ctx, facilityID, coachID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for calendar: %w", err)
	}

	seen := make(map[string]struct{})
	for _, bk := range booked {
		seen[bk.StartTime.Format("2006-01-02")] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

// GetDateAvailability returns the booked intervals on a date plus the coarse
// fully-booked flag.
func (s *DefaultAvailabilityService) GetDateAvailability(ctx context.Context, facilityID, coachID string, date time.Time) (*models.DateAvailability, error) {
	if facilityID == "" && coachID == "" {
		return nil, NewInvalidArgumentError("facilityId or coachId is required")
	}

	dayStart, dayEnd := dayBounds(date)
	booked, err := s.Repo.FindOverlapping(ctx, facilityID, coachID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date.Format("2006-01-02"), err)
	}

	intervals := make([]models.BookedInterval, 0, len(booked))
	for _, bk := range booked {
		intervals = append(intervals, models.BookedInterval{Start: bk.StartTime, End: bk.EndTime})
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start.Before(intervals[j].Start) })

	return &models.DateAvailability{
		Date:             date.Format("2006-01-02"),
		UnavailableSlots: intervals,
		IsFullyBooked:    len(intervals) > 0,
	}, nil
}

// dayBounds returns the full calendar day, midnight to the next midnight.
// Queries span the whole day so bookings outside the slot hours still show up
// in the calendar and date views.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func anyOverlaps(bookings []models.Booking, start, end time.Time) bool {
	for i := range bookings {
		if bookings[i].Overlaps(start, end) {
			return true
		}
	}
	return false
}
