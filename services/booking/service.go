package booking

import (
	"context"
	"errors"
	"fmt"

	directoryRepo "gamedey/database/repository/directory"
	"gamedey/models"

	"github.com/google/uuid"
)

// Create validates a booking request, checks for conflicts, prices the
// booking, persists it, and dispatches confirmation side effects when the
// booking is auto-confirmed. Validation failures return immediately with no
// partial writes.
func (s *DefaultBookingService) Create(ctx context.Context, req models.CreateBookingRequest, requesterID string) (*models.BookingDetail, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, NewInvalidArgumentError("endTime must be after startTime")
	}
	if req.ParticipantCount < 0 {
		return nil, NewInvalidArgumentError("participantCount must not be negative")
	}

	// 1. The sport must exist.
	sport, err := s.Directory.FindSport(ctx, req.SportID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrNotFound) {
			return nil, NewNotFoundError("sport")
		}
		return nil, fmt.Errorf("failed to look up sport: %w", err)
	}

	// 2. The booking type must be one of the enumerated values.
	if !req.BookingType.Valid() {
		return nil, NewInvalidArgumentError(fmt.Sprintf("invalid booking type %q", req.BookingType))
	}

	// 3. Kind-specific resource presence.
	switch req.BookingType {
	case models.BookingTypeBoth:
		if req.FacilityID == "" || req.CoachID == "" {
			return nil, NewInvalidArgumentError("booking type 'both' requires facilityId and coachId")
		}
	case models.BookingTypeFacility:
		if req.FacilityID == "" {
			return nil, NewInvalidArgumentError("booking type 'facility' requires facilityId")
		}
	case models.BookingTypeCoach:
		if req.CoachID == "" {
			return nil, NewInvalidArgumentError("booking type 'coach' requires coachId")
		}
	}

	// 4. The facility must exist, be active, and offer the sport.
	var facility *models.Facility
	if req.FacilityID != "" {
		facility, err = s.Directory.FindFacility(ctx, req.FacilityID)
		if err != nil && !errors.Is(err, directoryRepo.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up facility: %w", err)
		}
		if facility == nil || !facility.IsActive() || !facility.OffersSport(sport.ID) {
			return nil, NewNotFoundError("facility offering this sport")
		}
	}

	// 5. Same checks for the coach.
	var coach *models.Coach
	if req.CoachID != "" {
		coach, err = s.Directory.FindCoach(ctx, req.CoachID)
		if err != nil && !errors.Is(err, directoryRepo.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up coach: %w", err)
		}
		if coach == nil || !coach.IsActive() || !coach.OffersSport(sport.ID) {
			return nil, NewNotFoundError("coach offering this sport")
		}
	}

	// 6. Conflict check. The read here and the insert below are not wrapped in
	// a transaction, and no exclusion constraint backs them: two concurrent
	// requests for the same slot can both pass and both insert.
	conflicts, err := s.Repo.FindOverlapping(ctx, req.FacilityID, req.CoachID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, NewConflictError("the requested time slot is already booked")
	}

	// 7. Pricing.
	var pkg *models.SessionPackage
	if req.PackageID != "" {
		pkg, err = s.Directory.FindPackage(ctx, req.PackageID)
		if err != nil {
			if errors.Is(err, directoryRepo.ErrNotFound) {
				return nil, NewNotFoundError("package")
			}
			return nil, fmt.Errorf("failed to look up package: %w", err)
		}
	}
	quote := ComputeQuote(facility, coach, pkg, req.StartTime, req.EndTime, s.ServiceFeeRate)

	participants := req.ParticipantCount
	if participants == 0 {
		participants = 1
	}

	status := models.BookingStatusPending
	if autoConfirm(facility, coach) {
		status = models.BookingStatusConfirmed
	}

	now := s.now()
	bk := models.Booking{
		ID:               uuid.New().String(),
		UserID:           requesterID,
		FacilityID:       req.FacilityID,
		CoachID:          req.CoachID,
		SportID:          sport.ID,
		PackageID:        req.PackageID,
		BookingType:      req.BookingType,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		ParticipantCount: participants,
		Notes:            req.Notes,
		Subtotal:         quote.Subtotal,
		ServiceFee:       quote.ServiceFee,
		TotalAmount:      quote.Total,
		Currency:         quote.Currency,
		Status:           status,
		PaymentStatus:    models.PaymentStatusUnpaid,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// 8. Persist. This is the unit of durability.
	if err := s.Repo.Create(ctx, &bk); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	detail := &models.BookingDetail{
		Booking:  bk,
		Facility: facility,
		Coach:    coach,
		Sport:    sport,
		Package:  pkg,
	}

	// 9. Deferred side effects for auto-confirmed bookings.
	if status == models.BookingStatusConfirmed {
		s.dispatchConfirmation(ctx, detail)
	}

	return detail, nil
}

// autoConfirm reports whether every booked resource confirms bookings without
// owner review.
func autoConfirm(facility *models.Facility, coach *models.Coach) bool {
	if facility == nil && coach == nil {
		return false
	}
	if facility != nil && !facility.AutoConfirm {
		return false
	}
	if coach != nil && !coach.AutoConfirm {
		return false
	}
	return true
}

// dispatchConfirmation resolves the requester and hands the confirmation
// effects to the dispatcher. A requester lookup failure only costs the side
// effects, never the booking.
func (s *DefaultBookingService) dispatchConfirmation(ctx context.Context, detail *models.BookingDetail) {
	user, err := s.lookupRequester(ctx, detail.Booking.UserID)
	if err != nil {
		return
	}
	detail.User = user
	s.Effects.Dispatch(s.confirmationEffects(detail, user))
}
