package booking

import (
	"context"
	"testing"
	"time"

	"gamedey/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) mustCreate(t *testing.T, daysAhead int) *models.BookingDetail {
	t.Helper()
	start, end := f.slot(daysAhead, 10, 1)
	detail, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)
	return detail
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)

	_, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, "archived",
		models.Actor{UserID: "user-1", Role: models.RoleUser}, "")

	assert.True(t, IsCode(err, CodeInvalidArgument))
}

func TestUpdateStatusRejectsUnrelatedActor(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)

	_, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusCompleted,
		models.Actor{UserID: "stranger", Role: models.RoleUser}, "")

	assert.True(t, IsCode(err, CodePermissionDenied))
}

func TestUpdateStatusTerminalIsFinal(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)
	admin := models.Actor{UserID: "admin-1", Role: models.RoleAdmin}

	_, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusCompleted, admin, "")
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusConfirmed, admin, "")
	assert.True(t, IsCode(err, CodeInvalidState))

	_, err = f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusCancelled, admin, "")
	assert.True(t, IsCode(err, CodeInvalidState))
}

func TestUpdateStatusCancellationRecordsMetadata(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)

	updated, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusCancelled,
		models.Actor{UserID: "owner-1", Role: models.RoleFacility, FacilityID: "fac-1"}, "court flooded")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusCancelled, updated.Booking.Status)
	assert.Equal(t, "court flooded", updated.Booking.CancellationReason)
	assert.Equal(t, models.RoleFacility, updated.Booking.CancelledBy)
	require.NotNil(t, updated.Booking.CancelledAt)
	assert.Equal(t, f.now, *updated.Booking.CancelledAt)
}

func TestUpdateStatusNotifiesRequesterOnOthersChanges(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)

	_, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusCancelled,
		models.Actor{UserID: "owner-1", Role: models.RoleFacility, FacilityID: "fac-1"}, "maintenance")
	require.NoError(t, err)

	require.NotEmpty(t, f.notifier.inApp)
	last := f.notifier.inApp[len(f.notifier.inApp)-1]
	assert.Equal(t, "user-1", last.UserID)
	assert.Equal(t, "booking_cancelled", last.Type)
	assert.Contains(t, last.Message, "maintenance")
}

func TestUpdateStatusConfirmationFiresEffectsOnce(t *testing.T) {
	f := newFixture()
	fac := f.directory.facilities["fac-1"]
	fac.AutoConfirm = false
	f.directory.facilities["fac-1"] = fac
	detail := f.mustCreate(t, 3)
	owner := models.Actor{UserID: "owner-1", Role: models.RoleFacility, FacilityID: "fac-1"}

	updated, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusConfirmed, owner, "")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, updated.Booking.Status)
	assert.Equal(t, []string{"user1@example.com"}, f.notifier.confirmationEmails)
	assert.Equal(t, []string{detail.Booking.ID}, f.provisioner.bookingIDs)
}

func TestCancelRejectsNonRequester(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)

	_, err := f.svc.Cancel(context.Background(), detail.Booking.ID, "someone-else", "")

	assert.True(t, IsCode(err, CodePermissionDenied))
}

func TestCancelRejectsInsideCutoff(t *testing.T) {
	f := newFixture()
	// Starts in 12 hours; cutoff is 24.
	start, end := f.now.Add(12*time.Hour), f.now.Add(13*time.Hour)
	detail, err := f.svc.Create(context.Background(), models.CreateBookingRequest{
		SportID:     "sport-1",
		FacilityID:  "fac-1",
		BookingType: models.BookingTypeFacility,
		StartTime:   start,
		EndTime:     end,
	}, "user-1")
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), detail.Booking.ID, "user-1", "too late")
	assert.True(t, IsCode(err, CodeInvalidState))

	// The facility owner is not bound by the requester cutoff.
	updated, err := f.svc.UpdateStatus(context.Background(), detail.Booking.ID, models.BookingStatusCancelled,
		models.Actor{UserID: "owner-1", Role: models.RoleFacility, FacilityID: "fac-1"}, "emergency closure")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Booking.Status)
}

func TestCancelOutsideCutoffSucceeds(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)

	updated, err := f.svc.Cancel(context.Background(), detail.Booking.ID, "user-1", "schedule clash")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusCancelled, updated.Booking.Status)
	assert.Equal(t, models.RoleUser, updated.Booking.CancelledBy)
	assert.Equal(t, "schedule clash", updated.Booking.CancellationReason)
}

func TestGetBookingPermissions(t *testing.T) {
	f := newFixture()
	detail := f.mustCreate(t, 3)
	id := detail.Booking.ID

	_, err := f.svc.GetBooking(context.Background(), id, models.Actor{UserID: "user-1", Role: models.RoleUser})
	assert.NoError(t, err)

	_, err = f.svc.GetBooking(context.Background(), id, models.Actor{UserID: "owner-1", Role: models.RoleFacility, FacilityID: "fac-1"})
	assert.NoError(t, err)

	_, err = f.svc.GetBooking(context.Background(), id, models.Actor{UserID: "stranger", Role: models.RoleUser})
	assert.True(t, IsCode(err, CodePermissionDenied))
}

func TestListResourceBookingsRequiresResource(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ListResourceBookings(context.Background(), models.Actor{UserID: "user-1", Role: models.RoleUser})

	assert.True(t, IsCode(err, CodePermissionDenied))
}
