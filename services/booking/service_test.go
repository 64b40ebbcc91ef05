package booking

import (
	"context"
	"testing"
	"time"

	"gamedey/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAutoConfirmedBooking(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 2)

	detail, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, detail.Booking.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, detail.Booking.PaymentStatus)
	assert.Equal(t, 1, detail.Booking.ParticipantCount, "participant count defaults to 1")
	assert.Equal(t, 10000.0, detail.Booking.Subtotal)
	assert.Equal(t, 750.0, detail.Booking.ServiceFee)
	assert.Equal(t, 10750.0, detail.Booking.TotalAmount)
	assert.Equal(t, "NGN", detail.Booking.Currency)

	// Auto-confirmation fires the full side effect set.
	assert.Equal(t, []string{"user1@example.com"}, f.notifier.confirmationEmails)
	assert.Equal(t, []string{detail.Booking.ID}, f.provisioner.bookingIDs)
	require.Len(t, f.scheduler.reminders, 1)
	assert.Equal(t, detail.Booking.ID, f.scheduler.reminders[0].BookingID)
	assert.Equal(t, start.Add(-24*time.Hour), f.scheduler.fireTimes[0])
}

func TestCreatePendingWhenNotAutoConfirm(t *testing.T) {
	f := newFixture()
	fac := f.directory.facilities["fac-1"]
	fac.AutoConfirm = false
	f.directory.facilities["fac-1"] = fac
	start, end := f.slot(3, 10, 1)

	detail, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, detail.Booking.Status)
	assert.Empty(t, f.notifier.confirmationEmails, "no side effects before confirmation")
	assert.Empty(t, f.provisioner.bookingIDs)
}

func TestCreateRejectsInvertedTimeRange(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 1)

	_, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   end,
		EndTime:     start,
	}, "user-1")

	assert.True(t, IsCode(err, CodeInvalidArgument))
}

func TestCreateRejectsUnknownSport(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 1)

	_, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-404",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")

	assert.True(t, IsCode(err, CodeNotFound))
}

func TestCreateRejectsMissingResourceForKind(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 1)

	cases := []models.CreateBookingRequest{
		{SportID: "sport-1", BookingType: models.BookingTypeFacility, StartTime: start, EndTime: end},
		{SportID: "sport-1", BookingType: models.BookingTypeCoach, StartTime: start, EndTime: end},
		{SportID: "sport-1", FacilityID: "fac-1", BookingType: models.BookingTypeBoth, StartTime: start, EndTime: end},
	}
	for _, req := range cases {
		_, err := f.svc.Create(context.Background(), req, "user-1")
		assert.True(t, IsCode(err, CodeInvalidArgument), "kind %s", req.BookingType)
	}
}

func TestCreateRejectsInactiveFacility(t *testing.T) {
	f := newFixture()
	fac := f.directory.facilities["fac-1"]
	fac.Status = "suspended"
	f.directory.facilities["fac-1"] = fac
	start, end := f.slot(3, 10, 1)

	_, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")

	assert.True(t, IsCode(err, CodeNotFound))
}

func TestCreateRejectsFacilityNotOfferingSport(t *testing.T) {
	f := newFixture()
	f.directory.sports["sport-2"] = models.Sport{ID: "sport-2", Name: "Padel"}
	start, end := f.slot(3, 10, 1)

	_, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-2",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")

	assert.True(t, IsCode(err, CodeNotFound))
}

func TestCreateRejectsOverlappingBooking(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 2)

	_, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	// Second request overlapping the middle of the first.
	_, err = f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start.Add(time.Hour),
		EndTime:     end.Add(time.Hour),
	}, "user-2")

	assert.True(t, IsCode(err, CodeConflict))
}

func TestCreateAllowsBackToBackBookings(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 1)

	_, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	// Shared boundary instant is not an overlap.
	_, err = f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   end,
		EndTime:     end.Add(time.Hour),
	}, "user-2")

	assert.NoError(t, err)
}

func TestCreateCancelledBookingDoesNotBlockSlot(t *testing.T) {
	f := newFixture()
	start, end := f.slot(3, 10, 1)

	detail, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), detail.Booking.ID, "user-1", "change of plans")
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-2")

	assert.NoError(t, err)
}

func TestCreateBothKindUsesPackagePricing(t *testing.T) {
	f := newFixture()
	f.directory.packages["pkg-1"] = models.SessionPackage{
		ID: "pkg-1", Name: "5 Sessions", PricePerSession: 20000, Currency: "NGN",
	}
	start, end := f.slot(3, 10, 2)

	detail, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		CoachID:     "coach-1",
		PackageID:   "pkg-1",
		BookingType: models.BookingTypeBoth,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 20000.0, detail.Booking.Subtotal)
	assert.Equal(t, 1500.0, detail.Booking.ServiceFee)
	assert.Equal(t, 21500.0, detail.Booking.TotalAmount)
}
