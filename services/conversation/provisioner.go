// File: services/conversation/provisioner.go
package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "gamedey/database/repository/booking"
	conversationRepo "gamedey/database/repository/conversation"
	"gamedey/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Provisioner guarantees a confirmed booking has its chat channels: one per
// counterpart (coach-side, facility-side). Provisioning is idempotent, so
// callers may retry freely.
type Provisioner interface {
	EnsureConversations(ctx context.Context, bookingID string) (*models.ConversationSet, error)
	GetConversations(ctx context.Context, bookingID string) (*models.ConversationSet, error)
}

// DefaultProvisioner implements Provisioner against the conversation store.
type DefaultProvisioner struct {
	Bookings      bookingRepo.BookingRepository
	Conversations conversationRepo.ConversationRepository
}

func NewDefaultProvisioner(bookings bookingRepo.BookingRepository, conversations conversationRepo.ConversationRepository) *DefaultProvisioner {
	return &DefaultProvisioner{Bookings: bookings, Conversations: conversations}
}

// EnsureConversations creates the missing channels for a booking and returns
// the full set. Existing channels are reused; the unique
// (bookingId, counterpartType) index catches the create/create race, and a
// duplicate key error resolves to the winner's document.
func (p *DefaultProvisioner) EnsureConversations(ctx context.Context, bookingID string) (*models.ConversationSet, error) {
	bk, err := p.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, fmt.Errorf("booking %s not found", bookingID)
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	set, err := p.GetConversations(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if bk.CoachID != "" && set.Coach == nil {
		conv, err := p.create(ctx, bk, models.CounterpartCoach, bk.CoachID)
		if err != nil {
			return nil, err
		}
		set.Coach = conv
	}
	if bk.FacilityID != "" && set.Facility == nil {
		conv, err := p.create(ctx, bk, models.CounterpartFacility, bk.FacilityID)
		if err != nil {
			return nil, err
		}
		set.Facility = conv
	}

	return set, nil
}

// GetConversations returns the booking's existing channels grouped by
// counterpart type, without creating anything.
func (p *DefaultProvisioner) GetConversations(ctx context.Context, bookingID string) (*models.ConversationSet, error) {
	existing, err := p.Conversations.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations for booking %s: %w", bookingID, err)
	}

	set := &models.ConversationSet{}
	for i := range existing {
		switch existing[i].CounterpartType {
		case models.CounterpartCoach:
			set.Coach = &existing[i]
		case models.CounterpartFacility:
			set.Facility = &existing[i]
		}
	}
	return set, nil
}

func (p *DefaultProvisioner) create(ctx context.Context, bk *models.Booking, counterpart models.CounterpartType, counterpartID string) (*models.Conversation, error) {
	conv := &models.Conversation{
		ID:              uuid.New().String(),
		BookingID:       bk.ID,
		UserID:          bk.UserID,
		CounterpartType: counterpart,
		CounterpartID:   counterpartID,
		CreatedAt:       time.Now(),
	}

	if err := p.Conversations.Create(ctx, conv); err != nil {
		if mongo.IsDuplicateKeyError(errors.Unwrap(err)) || mongo.IsDuplicateKeyError(err) {
			return p.lookupExisting(ctx, bk.ID, counterpart)
		}
		return nil, fmt.Errorf("failed to create %s conversation: %w", counterpart, err)
	}
	return conv, nil
}

func (p *DefaultProvisioner) lookupExisting(ctx context.Context, bookingID string, counterpart models.CounterpartType) (*models.Conversation, error) {
	set, err := p.GetConversations(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	switch counterpart {
	case models.CounterpartCoach:
		if set.Coach != nil {
			return set.Coach, nil
		}
	case models.CounterpartFacility:
		if set.Facility != nil {
			return set.Facility, nil
		}
	}
	return nil, fmt.Errorf("duplicate %s conversation for booking %s not found on reread", counterpart, bookingID)
}
