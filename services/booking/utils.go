package booking

import (
	"context"
	"fmt"
	"time"

	"gamedey/models"
)

func formatBookingDateTime(t time.Time) string {
	return t.Format("2 January, 3:04 PM")
}

func formatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("3:04 PM"), end.Format("3:04 PM"))
}

// BuildSummary flattens a booking detail into the view used for confirmation
// messages.
func BuildSummary(detail *models.BookingDetail) models.BookingSummary {
	b := detail.Booking
	return models.BookingSummary{
		BookingID:     b.ID,
		ResourceName:  detail.ResourceName(),
		Date:          b.StartTime.Format("2006-01-02"),
		TimeRange:     formatTimeRange(b.StartTime, b.EndTime),
		DurationHours: b.DurationHours(),
		Subtotal:      b.Subtotal,
		ServiceFee:    b.ServiceFee,
		Total:         b.TotalAmount,
		Currency:      b.Currency,
	}
}

// enrich resolves the booking's directory relations for display. Lookup
// failures leave the corresponding field nil rather than failing the call.
func (s *DefaultBookingService) enrich(ctx context.Context, bk *models.Booking) *models.BookingDetail {
	detail := &models.BookingDetail{Booking: *bk}
	if bk.FacilityID != "" {
		if facility, err := s.Directory.FindFacility(ctx, bk.FacilityID); err == nil {
			detail.Facility = facility
		}
	}
	if bk.CoachID != "" {
		if coach, err := s.Directory.FindCoach(ctx, bk.CoachID); err == nil {
			detail.Coach = coach
		}
	}
	if bk.SportID != "" {
		if sport, err := s.Directory.FindSport(ctx, bk.SportID); err == nil {
			detail.Sport = sport
		}
	}
	if bk.PackageID != "" {
		if pkg, err := s.Directory.FindPackage(ctx, bk.PackageID); err == nil {
			detail.Package = pkg
		}
	}
	return detail
}

func (s *DefaultBookingService) lookupRequester(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requester %s: %w", userID, err)
	}
	return user, nil
}
