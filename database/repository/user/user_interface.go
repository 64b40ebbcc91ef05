package userRepo

import (
	"context"
	"errors"

	"gamedey/models"
)

// ErrNotFound is returned when a user id or email resolves to no document.
var ErrNotFound = errors.New("user not found")

// UserRepository defines the data access interface for user accounts as the
// booking engine needs them: recipient lookup for notifications and emails,
// and in-app notification delivery onto the user document.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	PushNotification(ctx context.Context, userID string, notification models.Notification) error
	UpdateFCMToken(ctx context.Context, userID, token string) error
	EnsureIndexes() error
}
