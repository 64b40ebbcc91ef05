// File: services/role/role.go
package role

import (
	"context"
	"errors"
	"fmt"

	directoryRepo "gamedey/database/repository/directory"
	userRepo "gamedey/database/repository/user"
	"gamedey/models"
)

// Resolver turns an authenticated user id into the actor for this request.
// Handlers call it once and pass the result down, so permission checks never
// probe the directory collections themselves.
type Resolver interface {
	Resolve(ctx context.Context, userID string) (models.Actor, error)
}

// DefaultResolver resolves capabilities in precedence order: admin flag on
// the user document, then coach profile, then facility ownership, then plain
// user.
type DefaultResolver struct {
	Users     userRepo.UserRepository
	Directory directoryRepo.DirectoryRepository
}

func NewResolver(users userRepo.UserRepository, directory directoryRepo.DirectoryRepository) *DefaultResolver {
	return &DefaultResolver{Users: users, Directory: directory}
}

func (r *DefaultResolver) Resolve(ctx context.Context, userID string) (models.Actor, error) {
	user, err := r.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return models.Actor{}, fmt.Errorf("unknown user %s", userID)
		}
		return models.Actor{}, fmt.Errorf("failed to resolve role: %w", err)
	}

	if user.Admin {
		return models.Actor{UserID: userID, Role: models.RoleAdmin}, nil
	}

	coach, err := r.Directory.FindCoachByUserID(ctx, userID)
	if err != nil && !errors.Is(err, directoryRepo.ErrNotFound) {
		return models.Actor{}, fmt.Errorf("failed to resolve coach profile: %w", err)
	}
	if coach != nil {
		return models.Actor{UserID: userID, Role: models.RoleCoach, CoachID: coach.ID}, nil
	}

	facility, err := r.Directory.FindFacilityByOwnerID(ctx, userID)
	if err != nil && !errors.Is(err, directoryRepo.ErrNotFound) {
		return models.Actor{}, fmt.Errorf("failed to resolve facility ownership: %w", err)
	}
	if facility != nil {
		return models.Actor{UserID: userID, Role: models.RoleFacility, FacilityID: facility.ID}, nil
	}

	return models.Actor{UserID: userID, Role: models.RoleUser}, nil
}
