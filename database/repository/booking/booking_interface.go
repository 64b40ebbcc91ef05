package bookingRepo

import (
	"context"
	"time"

	"gamedey/models"
)

// Filter narrows booking queries. Zero-value fields are ignored.
type Filter struct {
	UserID     string
	FacilityID string
	CoachID    string
	Statuses   []models.BookingStatus
	// From/To select bookings whose interval overlaps [From, To).
	From *time.Time
	To   *time.Time
}

// BookingRepository defines the persistence interface for booking records.
// Bookings are never physically deleted; cancellation is a status transition.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context, filter Filter) ([]models.Booking, error)
	// FindOverlapping returns pending/confirmed bookings on the given facility
	// or coach whose interval overlaps [start, end).
	FindOverlapping(ctx context.Context, facilityID, coachID string, start, end time.Time) ([]models.Booking, error)
	EnsureIndexes() error
}
