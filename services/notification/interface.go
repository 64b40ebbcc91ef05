package notification

import (
	"context"

	"gamedey/models"
)

// NotificationService delivers booking messages to users: confirmation emails,
// in-app notifications persisted on the user document, and FCM pushes.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, email, name string, summary models.BookingSummary) error
	CreateInAppNotification(ctx context.Context, userID, notifType, title, message string) error
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// EmailSender sends a plain text email to a single recipient.
type EmailSender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
