package models

// BookingDetail is a booking enriched with its resolved relations for display.
type BookingDetail struct {
	Booking  Booking         `json:"booking"`
	User     *User           `json:"user,omitempty"`
	Facility *Facility       `json:"facility,omitempty"`
	Coach    *Coach          `json:"coach,omitempty"`
	Sport    *Sport          `json:"sport,omitempty"`
	Package  *SessionPackage `json:"package,omitempty"`
}

// ResourceName returns a human-readable name for the booked resource(s):
// facility name, coach full name, or both combined.
func (d *BookingDetail) ResourceName() string {
	switch {
	case d.Facility != nil && d.Coach != nil:
		return d.Facility.Name + " with " + d.Coach.FullName()
	case d.Facility != nil:
		return d.Facility.Name
	case d.Coach != nil:
		return d.Coach.FullName()
	}
	return ""
}

// BookingSummary is the flattened view used for confirmation messages.
type BookingSummary struct {
	BookingID     string  `json:"bookingId"`
	ResourceName  string  `json:"resourceName"`
	Date          string  `json:"date"`
	TimeRange     string  `json:"timeRange"`
	DurationHours float64 `json:"durationHours"`
	Subtotal      float64 `json:"subtotal"`
	ServiceFee    float64 `json:"serviceFee"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}
