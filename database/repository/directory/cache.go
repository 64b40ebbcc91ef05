package directoryRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gamedey/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

// CachedDirectoryRepo is a read-through Redis cache in front of a
// DirectoryRepository. Directory entries change rarely; bookings read them on
// every create, so hot lookups are served from cache. Reverse owner lookups
// bypass the cache since they back permission checks.
type CachedDirectoryRepo struct {
	inner  DirectoryRepository
	cache  *redis.Client
	logger *zap.Logger
}

// NewCachedDirectoryRepo wraps the given repository with a Redis cache.
func NewCachedDirectoryRepo(inner DirectoryRepository, cache *redis.Client, logger *zap.Logger) DirectoryRepository {
	return &CachedDirectoryRepo{inner: inner, cache: cache, logger: logger}
}

func cachedLookup[T any](r *CachedDirectoryRepo, ctx context.Context, key string, fetch func(context.Context) (*T, error)) (*T, error) {
	if data, err := r.cache.Get(ctx, key).Result(); err == nil {
		var v T
		if jsonErr := json.Unmarshal([]byte(data), &v); jsonErr == nil {
			return &v, nil
		}
		// Corrupt entry; fall through to the source of truth.
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("directory cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(v); jsonErr == nil {
		if setErr := r.cache.Set(ctx, key, data, cacheTTL).Err(); setErr != nil {
			r.logger.Warn("directory cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}
	return v, nil
}

func (r *CachedDirectoryRepo) FindSport(ctx context.Context, sportID string) (*models.Sport, error) {
	return cachedLookup(r, ctx, "dir:sport:"+sportID, func(ctx context.Context) (*models.Sport, error) {
		return r.inner.FindSport(ctx, sportID)
	})
}

func (r *CachedDirectoryRepo) FindFacility(ctx context.Context, facilityID string) (*models.Facility, error) {
	return cachedLookup(r, ctx, "dir:facility:"+facilityID, func(ctx context.Context) (*models.Facility, error) {
		return r.inner.FindFacility(ctx, facilityID)
	})
}

func (r *CachedDirectoryRepo) FindCoach(ctx context.Context, coachID string) (*models.Coach, error) {
	return cachedLookup(r, ctx, "dir:coach:"+coachID, func(ctx context.Context) (*models.Coach, error) {
		return r.inner.FindCoach(ctx, coachID)
	})
}

func (r *CachedDirectoryRepo) FindPackage(ctx context.Context, packageID string) (*models.SessionPackage, error) {
	return cachedLookup(r, ctx, "dir:package:"+packageID, func(ctx context.Context) (*models.SessionPackage, error) {
		return r.inner.FindPackage(ctx, packageID)
	})
}

func (r *CachedDirectoryRepo) FindCoachByUserID(ctx context.Context, userID string) (*models.Coach, error) {
	return r.inner.FindCoachByUserID(ctx, userID)
}

func (r *CachedDirectoryRepo) FindFacilityByOwnerID(ctx context.Context, userID string) (*models.Facility, error) {
	return r.inner.FindFacilityByOwnerID(ctx, userID)
}
