package models

// PaymentIntentInfo is what clients need to complete a Stripe payment for a
// booking.
type PaymentIntentInfo struct {
	BookingID    string  `json:"bookingId"`
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
