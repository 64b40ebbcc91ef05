package directoryRepo

import (
	"context"
	"errors"

	"gamedey/models"
)

// ErrNotFound is returned when a directory lookup resolves to no document.
var ErrNotFound = errors.New("directory entry not found")

// DirectoryRepository is the provider directory and pricing catalog: sports,
// facilities, coaches and session packages, plus reverse lookups by owner
// used for role resolution.
type DirectoryRepository interface {
	FindSport(ctx context.Context, sportID string) (*models.Sport, error)
	FindFacility(ctx context.Context, facilityID string) (*models.Facility, error)
	FindCoach(ctx context.Context, coachID string) (*models.Coach, error)
	FindPackage(ctx context.Context, packageID string) (*models.SessionPackage, error)

	FindCoachByUserID(ctx context.Context, userID string) (*models.Coach, error)
	FindFacilityByOwnerID(ctx context.Context, userID string) (*models.Facility, error)
}
