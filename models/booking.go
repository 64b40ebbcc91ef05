package models

import "time"

// BookingType indicates whether a booking covers a facility, a coach, or both jointly.
type BookingType string

const (
	BookingTypeFacility BookingType = "facility"
	BookingTypeCoach    BookingType = "coach"
	BookingTypeBoth     BookingType = "both"
)

// Valid reports whether the booking type is one of the enumerated values.
func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeFacility, BookingTypeCoach, BookingTypeBoth:
		return true
	}
	return false
}

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// Valid reports whether the status is one of the enumerated values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// PaymentStatus tracks settlement of the booking total with the external gateway.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ActorRole identifies which party performed an action on a booking.
type ActorRole string

const (
	RoleUser     ActorRole = "user"
	RoleCoach    ActorRole = "coach"
	RoleFacility ActorRole = "facility"
	RoleAdmin    ActorRole = "admin"
)

// Booking represents a facility and/or coach reservation.
type Booking struct {
	ID               string        `bson:"id" json:"id"`                                       // Unique booking identifier (UUID)
	UserID           string        `bson:"userId" json:"userId"`                               // User who made the booking
	FacilityID       string        `bson:"facilityId,omitempty" json:"facilityId,omitempty"`   // Booked facility, if any
	CoachID          string        `bson:"coachId,omitempty" json:"coachId,omitempty"`         // Booked coach, if any
	SportID          string        `bson:"sportId" json:"sportId"`                             // Sport being played
	PackageID        string        `bson:"packageId,omitempty" json:"packageId,omitempty"`     // Session package, overrides hourly pricing
	BookingType      BookingType   `bson:"bookingType" json:"bookingType"`                     // facility | coach | both
	StartTime        time.Time     `bson:"startTime" json:"startTime"`                         // Booking start instant
	EndTime          time.Time     `bson:"endTime" json:"endTime"`                             // Booking end instant (strictly after start)
	ParticipantCount int           `bson:"participantCount" json:"participantCount"`          // Number of players, >= 1
	Notes            string        `bson:"notes,omitempty" json:"notes,omitempty"`             // Free-text note from the requester
	Subtotal         float64       `bson:"subtotal" json:"subtotal"`                           // Pre-fee amount, 2 decimals
	ServiceFee       float64       `bson:"serviceFee" json:"serviceFee"`                       // subtotal * fee rate, 2 decimals
	TotalAmount      float64       `bson:"totalAmount" json:"totalAmount"`                     // subtotal + serviceFee, 2 decimals
	Currency         string        `bson:"currency" json:"currency"`                           // Currency code, passed through unchanged
	Status           BookingStatus `bson:"status" json:"status"`                               // Lifecycle status
	PaymentStatus    PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`                 // Settlement status
	CancellationReason string      `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancelledBy        ActorRole   `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"` // Which party cancelled
	CancelledAt        *time.Time  `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CreatedAt          time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether the booking's interval intersects [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// CanBeCancelled reports whether the requester may still cancel: the start must
// be at least the cutoff away and the status must not be terminal.
func (b *Booking) CanBeCancelled(now time.Time, cutoff time.Duration) bool {
	if b.Status.Terminal() {
		return false
	}
	return b.StartTime.Sub(now) >= cutoff
}

// DurationHours returns the booked duration in (fractional) hours.
func (b *Booking) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}
