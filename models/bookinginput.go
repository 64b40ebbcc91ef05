package models

import "time"

// CreateBookingRequest carries the fields a requester submits to book a
// facility and/or coach. Start and end are ISO timestamps.
type CreateBookingRequest struct {
	SportID          string      `json:"sportId" binding:"required"`
	FacilityID       string      `json:"facilityId"`
	CoachID          string      `json:"coachId"`
	PackageID        string      `json:"packageId"`
	BookingType      BookingType `json:"bookingType" binding:"required"`
	StartTime        time.Time   `json:"startTime" binding:"required"`
	EndTime          time.Time   `json:"endTime" binding:"required"`
	ParticipantCount int         `json:"participantCount"`
	Notes            string      `json:"notes"`
}

// UpdateBookingStatusRequest carries a status transition request.
type UpdateBookingStatusRequest struct {
	Status             BookingStatus `json:"status" binding:"required"`
	CancellationReason string        `json:"cancellationReason"`
}

// CancelBookingRequest is the requester-facing cancellation body.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
