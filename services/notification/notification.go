// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"
	"time"

	userRepo "gamedey/database/repository/user"
	"gamedey/models"
	"gamedey/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation. Emails go out
// through SES, in-app notifications are pushed onto the user document, and an
// FCM push accompanies each in-app notification on a best effort basis.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
	Email EmailSender
}

func NewDefaultNotificationService(users userRepo.UserRepository, email EmailSender) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users, Email: email}, nil
}

// SendBookingConfirmation emails the requester their booking receipt.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, email, name string, summary models.BookingSummary) error {
	if s.Email == nil {
		return fmt.Errorf("no email sender configured")
	}
	if email == "" {
		return fmt.Errorf("recipient email is empty")
	}

	subject := fmt.Sprintf("Booking Confirmed: %s on %s", summary.ResourceName, summary.Date)
	body := confirmationEmailBody(name, summary)
	if err := s.Email.Send(ctx, email, subject, body); err != nil {
		return fmt.Errorf("failed to send confirmation email to %s: %w", email, err)
	}
	return nil
}

// CreateInAppNotification appends a notification to the user document and
// fires a push. A push failure does not fail the call.
func (s *DefaultNotificationService) CreateInAppNotification(ctx context.Context, userID, notifType, title, message string) error {
	notif := models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.Users.PushNotification(ctx, userID, notif); err != nil {
		return fmt.Errorf("failed to store notification for user %s: %w", userID, err)
	}

	if err := s.SendUserPushNotification(ctx, userID, title, message, map[string]string{"type": notifType}); err != nil {
		utils.Logger.Warn("push notification failed",
			zap.String("userId", userID),
			zap.String("type", notifType),
			zap.Error(err),
		)
	}
	return nil
}

// SendUserPushNotification looks up the user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("fcm client is not initialized")
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if user.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "bookings",
				Sound:     "default",
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func confirmationEmailBody(name string, summary models.BookingSummary) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your booking is confirmed!\n\n"+
			"Where: %s\n"+
			"When: %s, %s\n"+
			"Duration: %.1f hour(s)\n\n"+
			"Subtotal: %s %.2f\n"+
			"Service fee: %s %.2f\n"+
			"Total: %s %.2f\n\n"+
			"Booking reference: %s\n\n"+
			"See you on the court!\n"+
			"The Gamedey Team",
		name,
		summary.ResourceName,
		summary.Date, summary.TimeRange,
		summary.DurationHours,
		summary.Currency, summary.Subtotal,
		summary.Currency, summary.ServiceFee,
		summary.Currency, summary.Total,
		summary.BookingID,
	)
}
