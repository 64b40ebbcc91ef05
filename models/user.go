package models

import "time"

// User is an account on the platform. Coaches and facility owners also have a
// user account; their capabilities are resolved through the role service.
type User struct {
	ID            string         `bson:"id" json:"id"`
	Email         string         `bson:"email" json:"email"`
	Username      string         `bson:"username" json:"username"`
	FirstName     string         `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName      string         `bson:"lastName,omitempty" json:"lastName,omitempty"`
	PhoneNumber   string         `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	PasswordHash  string         `bson:"passwordHash" json:"-"`
	Admin         bool           `bson:"admin,omitempty" json:"admin,omitempty"`
	FCMToken      string         `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName returns the user's preferred display name.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		if u.LastName != "" {
			return u.FirstName + " " + u.LastName
		}
		return u.FirstName
	}
	return u.Username
}
