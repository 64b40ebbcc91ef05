package booking

import (
	"math"
	"time"

	"gamedey/models"
)

// Quote is the priced breakdown of a booking request.
type Quote struct {
	Subtotal   float64
	ServiceFee float64
	Total      float64
	Currency   string
}

// round2 rounds a currency amount to 2 decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeQuote prices a booking. A session package fixes the subtotal at its
// per-session price regardless of duration; otherwise the subtotal is the sum
// of the hourly rates of the booked resources over the duration. The service
// fee is feeRate of the subtotal; total = subtotal + fee, all 2 decimals.
func ComputeQuote(facility *models.Facility, coach *models.Coach, pkg *models.SessionPackage, start, end time.Time, feeRate float64) Quote {
	hours := end.Sub(start).Hours()

	var subtotal float64
	var currency string
	switch {
	case pkg != nil:
		subtotal = pkg.PricePerSession
		currency = pkg.Currency
	default:
		if facility != nil {
			subtotal += facility.PricePerHour * hours
			currency = facility.Currency
		}
		if coach != nil {
			subtotal += coach.HourlyRate * hours
			if currency == "" {
				currency = coach.Currency
			}
		}
	}

	subtotal = round2(subtotal)
	fee := round2(subtotal * feeRate)
	return Quote{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      round2(subtotal + fee),
		Currency:   currency,
	}
}
