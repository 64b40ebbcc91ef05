// File: services/booking/updates.go
package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "gamedey/database/repository/booking"
	"gamedey/models"
)

// UpdateStatus transitions a booking to a new lifecycle status. The actor
// must be the requester, the booked coach, the booked facility's owner, or an
// administrator. Completed and cancelled are terminal. The 24-hour
// cancellation cutoff is NOT enforced here; privileged parties cancel
// through this path regardless of how close the start is.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus, actor models.Actor, reason string) (*models.BookingDetail, error) {
	if !newStatus.Valid() {
		return nil, NewInvalidArgumentError(fmt.Sprintf("invalid booking status %q", newStatus))
	}

	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking")
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if !canModify(bk, actor) {
		return nil, NewPermissionDeniedError("you are not allowed to modify this booking")
	}

	if bk.Status.Terminal() {
		return nil, NewInvalidStateError(fmt.Sprintf("booking is already %s", bk.Status))
	}

	wasConfirmed := bk.Status == models.BookingStatusConfirmed
	now := s.now()
	bk.Status = newStatus
	bk.UpdatedAt = now

	if newStatus == models.BookingStatusCancelled {
		bk.CancellationReason = reason
		bk.CancelledBy = actor.Role
		bk.CancelledAt = &now
	}

	if err := s.Repo.Update(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	detail := s.enrich(ctx, bk)

	var effects []Effect

	// A fresh confirmation fires the same side effects as an auto-confirmed
	// create. Conversation provisioning is idempotent, so a repeated
	// pending->confirmed transition never duplicates channels.
	if newStatus == models.BookingStatusConfirmed && !wasConfirmed {
		if user, err := s.lookupRequester(ctx, bk.UserID); err == nil {
			detail.User = user
			effects = append(effects, s.confirmationEffects(detail, user)...)
		}
	}

	// Tell the requester about changes they did not make themselves.
	if actor.UserID != bk.UserID {
		effects = append(effects, &inAppNotificationEffect{
			notifier:  s.Notifier,
			userID:    bk.UserID,
			notifType: "booking_" + string(newStatus),
			title:     statusChangeTitle(newStatus),
			message:   statusChangeMessage(detail, newStatus, reason),
		})
	}

	if len(effects) > 0 {
		s.Effects.Dispatch(effects)
	}

	return detail, nil
}

// Cancel is the requester-facing cancellation path. It is restricted to the
// original requester and enforces the cancellation cutoff: the start must be
// at least CancellationCutoff away and the status must not be terminal.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, requesterID, reason string) (*models.BookingDetail, error) {
	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking")
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if bk.UserID != requesterID {
		return nil, NewPermissionDeniedError("only the requester may cancel through this path")
	}
	if !bk.CanBeCancelled(s.now(), s.CancellationCutoff) {
		return nil, NewInvalidStateError("booking can no longer be cancelled")
	}

	actor := models.Actor{UserID: requesterID, Role: models.RoleUser}
	return s.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled, actor, reason)
}

// canModify reports whether the actor may change this booking's status.
func canModify(bk *models.Booking, actor models.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.UserID == bk.UserID {
		return true
	}
	if actor.Role == models.RoleCoach && actor.CoachID != "" && actor.CoachID == bk.CoachID {
		return true
	}
	if actor.Role == models.RoleFacility && actor.FacilityID != "" && actor.FacilityID == bk.FacilityID {
		return true
	}
	return false
}

func statusChangeTitle(status models.BookingStatus) string {
	switch status {
	case models.BookingStatusConfirmed:
		return "Booking Confirmed!"
	case models.BookingStatusCancelled:
		return "Booking Cancelled"
	case models.BookingStatusCompleted:
		return "Booking Completed"
	case models.BookingStatusNoShow:
		return "Booking Marked as No-Show"
	default:
		return "Booking Updated"
	}
}

func statusChangeMessage(detail *models.BookingDetail, status models.BookingStatus, reason string) string {
	name := detail.ResourceName()
	if name == "" {
		name = "your booking"
	}
	when := formatBookingDateTime(detail.Booking.StartTime)
	msg := fmt.Sprintf("Your booking at %s on %s is now %s.", name, when, status)
	if status == models.BookingStatusCancelled && reason != "" {
		msg += " Reason: " + reason
	}
	return msg
}
