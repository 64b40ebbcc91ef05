package booking

import (
	"context"
	"time"

	bookingRepo "gamedey/database/repository/booking"
	directoryRepo "gamedey/database/repository/directory"
	userRepo "gamedey/database/repository/user"
	"gamedey/models"
	"gamedey/services/conversation"
	"gamedey/services/notification"
)

// BookingService is the engine behind facility/coach reservations: it
// validates requests, detects conflicts, prices the booking, persists it, and
// hands confirmation side effects to the dispatcher.
type BookingService interface {
	Create(ctx context.Context, req models.CreateBookingRequest, requesterID string) (*models.BookingDetail, error)
	GetBooking(ctx context.Context, bookingID string, actor models.Actor) (*models.BookingDetail, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListResourceBookings(ctx context.Context, actor models.Actor) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus, actor models.Actor, reason string) (*models.BookingDetail, error)
	Cancel(ctx context.Context, bookingID, requesterID, reason string) (*models.BookingDetail, error)
}

// AvailabilityService answers slot and calendar queries clients run before
// booking.
type AvailabilityService interface {
	GetSlots(ctx context.Context, facilityID, coachID string, date time.Time) ([]models.AvailableSlot, error)
	GetCalendar(ctx context.Context, facilityID, coachID string, startDate, endDate time.Time) ([]string, error)
	GetDateAvailability(ctx context.Context, facilityID, coachID string, date time.Time) (*models.DateAvailability, error)
}

// ReminderScheduler enqueues a booking reminder to fire at a given instant.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	Directory     directoryRepo.DirectoryRepository
	Users         userRepo.UserRepository
	Notifier      notification.NotificationService
	Conversations conversation.Provisioner
	Reminders     ReminderScheduler
	Effects       EffectDispatcher

	// ServiceFeeRate is the fixed surcharge applied to the subtotal (0.075).
	ServiceFeeRate float64
	// CancellationCutoff is how far before start a requester may still cancel.
	CancellationCutoff time.Duration
	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
