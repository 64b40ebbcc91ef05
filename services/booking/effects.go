package booking

import (
	"context"
	"fmt"
	"time"

	"gamedey/models"
	"gamedey/services/conversation"
	"gamedey/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Effect is a deferred side effect of a booking write: confirmation email,
// conversation provisioning, in-app notification, reminder scheduling. The
// booking write itself is the unit of durability; effects run after it and
// their failure never surfaces to the caller.
type Effect interface {
	Name() string
	Run(ctx context.Context) error
}

// EffectDispatcher executes a batch of effects.
type EffectDispatcher interface {
	Dispatch(effects []Effect)
}

// AsyncEffectDispatcher runs effects in a background goroutine, logging and
// swallowing failures. No retries are performed.
type AsyncEffectDispatcher struct {
	Logger  *zap.Logger
	Timeout time.Duration
}

func (d *AsyncEffectDispatcher) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return 10 * time.Second
}

// Dispatch executes each effect with its own timeout.
func (d *AsyncEffectDispatcher) Dispatch(effects []Effect) {
	go func() {
		for _, effect := range effects {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
			if err := effect.Run(ctx); err != nil {
				d.Logger.Warn("booking side effect failed",
					zap.String("effect", effect.Name()),
					zap.Error(err),
				)
			}
			cancel()
		}
	}()
}

type confirmationEmailEffect struct {
	notifier notification.NotificationService
	email    string
	name     string
	summary  models.BookingSummary
}

func (e *confirmationEmailEffect) Name() string { return "confirmationEmail" }

func (e *confirmationEmailEffect) Run(ctx context.Context) error {
	return e.notifier.SendBookingConfirmation(ctx, e.email, e.name, e.summary)
}

type provisionConversationsEffect struct {
	provisioner conversation.Provisioner
	bookingID   string
}

func (e *provisionConversationsEffect) Name() string { return "provisionConversations" }

func (e *provisionConversationsEffect) Run(ctx context.Context) error {
	_, err := e.provisioner.EnsureConversations(ctx, e.bookingID)
	return err
}

type inAppNotificationEffect struct {
	notifier  notification.NotificationService
	userID    string
	notifType string
	title     string
	message   string
}

func (e *inAppNotificationEffect) Name() string { return "inAppNotification" }

func (e *inAppNotificationEffect) Run(ctx context.Context) error {
	return e.notifier.CreateInAppNotification(ctx, e.userID, e.notifType, e.title, e.message)
}

type reminderEffect struct {
	scheduler ReminderScheduler
	payload   models.ReminderPayload
	fireAt    time.Time
}

func (e *reminderEffect) Name() string { return "scheduleReminder" }

func (e *reminderEffect) Run(_ context.Context) error {
	return e.scheduler.ScheduleReminder(e.payload, e.fireAt)
}

// confirmationEffects builds the deferred side effects for a booking that has
// just reached confirmed: email, chat provisioning, in-app notification, and
// a reminder 24h before start. Conversation provisioning is idempotent, so
// repeated confirmations do not duplicate channels.
func (s *DefaultBookingService) confirmationEffects(detail *models.BookingDetail, user *models.User) []Effect {
	b := detail.Booking
	summary := BuildSummary(detail)

	effects := []Effect{
		&confirmationEmailEffect{
			notifier: s.Notifier,
			email:    user.Email,
			name:     user.DisplayName(),
			summary:  summary,
		},
		&provisionConversationsEffect{
			provisioner: s.Conversations,
			bookingID:   b.ID,
		},
		&inAppNotificationEffect{
			notifier:  s.Notifier,
			userID:    user.ID,
			notifType: "booking_confirmed",
			title:     "Booking Confirmed!",
			message: fmt.Sprintf("Your booking at %s on %s has been confirmed. Total: %s %.2f.",
				summary.ResourceName, summary.Date, summary.Currency, summary.Total),
		},
	}

	if s.Reminders != nil {
		fireAt := b.StartTime.Add(-24 * time.Hour)
		if fireAt.After(s.now()) {
			effects = append(effects, &reminderEffect{
				scheduler: s.Reminders,
				payload: models.ReminderPayload{
					ReminderID: uuid.New().String(),
					BookingID:  b.ID,
					Target:     "user",
					ID:         user.ID,
					Title:      "Upcoming booking",
					Body: fmt.Sprintf("Reminder: your booking at %s is tomorrow at %s.",
						summary.ResourceName, summary.TimeRange),
					FireDate: fireAt.Format(time.RFC3339),
				},
				fireAt: fireAt,
			})
		}
	}

	return effects
}
