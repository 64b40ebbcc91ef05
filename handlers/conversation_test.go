package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamedey/middleware"
	"gamedey/models"
	booking "gamedey/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubBookingService grants booking visibility to its requester only.
type stubBookingService struct {
	requesterID string
}

func (s *stubBookingService) Create(_ context.Context, _ models.CreateBookingRequest, _ string) (*models.BookingDetail, error) {
	return nil, nil
}

func (s *stubBookingService) GetBooking(_ context.Context, bookingID string, actor models.Actor) (*models.BookingDetail, error) {
	if bookingID != "bk-1" {
		return nil, booking.NewNotFoundError("booking")
	}
	if actor.UserID != s.requesterID && !actor.IsAdmin() {
		return nil, booking.NewPermissionDeniedError("you are not allowed to view this booking")
	}
	return &models.BookingDetail{}, nil
}

func (s *stubBookingService) ListUserBookings(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) ListResourceBookings(_ context.Context, _ models.Actor) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) UpdateStatus(_ context.Context, _ string, _ models.BookingStatus, _ models.Actor, _ string) (*models.BookingDetail, error) {
	return nil, nil
}

func (s *stubBookingService) Cancel(_ context.Context, _, _, _ string) (*models.BookingDetail, error) {
	return nil, nil
}

type stubProvisioner struct {
	calls int
	set   *models.ConversationSet
}

func (p *stubProvisioner) EnsureConversations(_ context.Context, _ string) (*models.ConversationSet, error) {
	return p.set, nil
}

func (p *stubProvisioner) GetConversations(_ context.Context, _ string) (*models.ConversationSet, error) {
	p.calls++
	return p.set, nil
}

func conversationRouter(actor *models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings/:bookingID/conversations", func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.ContextActorKey, *actor)
		}
	}, GetBookingConversations)
	return r
}

func TestGetBookingConversationsVisibleToRequester(t *testing.T) {
	provisioner := &stubProvisioner{set: &models.ConversationSet{
		Coach: &models.Conversation{ID: "conv-1", BookingID: "bk-1", CounterpartType: models.CounterpartCoach},
	}}
	BookingService = &stubBookingService{requesterID: "user-1"}
	ConversationProvisioner = provisioner

	r := conversationRouter(&models.Actor{UserID: "user-1", Role: models.RoleUser})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bk-1/conversations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, provisioner.calls)
	assert.Contains(t, w.Body.String(), "conv-1")
}

func TestGetBookingConversationsDeniedToStranger(t *testing.T) {
	provisioner := &stubProvisioner{set: &models.ConversationSet{}}
	BookingService = &stubBookingService{requesterID: "user-1"}
	ConversationProvisioner = provisioner

	r := conversationRouter(&models.Actor{UserID: "someone-else", Role: models.RoleUser})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bk-1/conversations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 0, provisioner.calls, "conversations must not be fetched without visibility")
}

func TestGetBookingConversationsRequiresActor(t *testing.T) {
	BookingService = &stubBookingService{requesterID: "user-1"}
	ConversationProvisioner = &stubProvisioner{set: &models.ConversationSet{}}

	r := conversationRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bk-1/conversations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
