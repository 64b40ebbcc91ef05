package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "gamedey/database/repository/booking"
	"gamedey/models"
)

// GetBooking returns a booking enriched with its relations. Viewing is
// restricted to the requester, the booked coach, the booked facility's owner,
// and administrators.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string, actor models.Actor) (*models.BookingDetail, error) {
	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking")
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if !canModify(bk, actor) {
		return nil, NewPermissionDeniedError("you are not allowed to view this booking")
	}

	detail := s.enrich(ctx, bk)
	if user, err := s.lookupRequester(ctx, bk.UserID); err == nil {
		detail.User = user
	}
	return detail, nil
}

// ListUserBookings returns all bookings made by the given user, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, bookingRepo.Filter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListResourceBookings returns the bookings on the resource the actor owns:
// the coach's sessions or the facility's reservations.
func (s *DefaultBookingService) ListResourceBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error) {
	filter := bookingRepo.Filter{}
	switch {
	case actor.Role == models.RoleCoach && actor.CoachID != "":
		filter.CoachID = actor.CoachID
	case actor.Role == models.RoleFacility && actor.FacilityID != "":
		filter.FacilityID = actor.FacilityID
	default:
		return nil, NewPermissionDeniedError("no coach or facility is associated with this account")
	}

	bookings, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource bookings: %w", err)
	}
	return bookings, nil
}
