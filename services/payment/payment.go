// File: services/payment/payment.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	bookingRepo "gamedey/database/repository/booking"
	"gamedey/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentService creates Stripe payment intents for bookings and records
// payment outcomes on the booking document.
type PaymentService interface {
	CreateIntent(ctx context.Context, bookingID, requesterID string) (*models.PaymentIntentInfo, error)
	MarkPaid(ctx context.Context, bookingID string) error
}

// DefaultPaymentService implements PaymentService. The global stripe.Key is
// set once at startup.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
}

func NewDefaultPaymentService(bookings bookingRepo.BookingRepository) *DefaultPaymentService {
	return &DefaultPaymentService{Bookings: bookings}
}

// CreateIntent creates a payment intent for the booking's total. Only the
// requester may pay, and only while the booking is awaiting payment.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, bookingID, requesterID string) (*models.PaymentIntentInfo, error) {
	bk, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, fmt.Errorf("booking %s not found", bookingID)
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if bk.UserID != requesterID {
		return nil, fmt.Errorf("booking %s does not belong to this user", bookingID)
	}
	if bk.PaymentStatus == models.PaymentStatusPaid {
		return nil, fmt.Errorf("booking %s is already paid", bookingID)
	}
	if bk.Status == models.BookingStatusCancelled {
		return nil, fmt.Errorf("booking %s is cancelled", bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits(bk.TotalAmount)),
		Currency: stripe.String(strings.ToLower(bk.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", bk.ID)
	params.AddMetadata("userId", bk.UserID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentIntentInfo{
		BookingID:    bk.ID,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       bk.TotalAmount,
		Currency:     bk.Currency,
	}, nil
}

// MarkPaid flips the booking's payment status to paid.
func (s *DefaultPaymentService) MarkPaid(ctx context.Context, bookingID string) error {
	bk, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	bk.PaymentStatus = models.PaymentStatusPaid
	if err := s.Bookings.Update(ctx, bk); err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}
	return nil
}

// minorUnits converts a major-unit amount to the integer minor units Stripe
// expects, rounding to the nearest cent.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
