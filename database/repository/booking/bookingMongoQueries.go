package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"gamedey/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns bookings matching the filter, newest first.
func (repo *MongoBookingRepo) List(ctx context.Context, filter Filter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.FacilityID != "" {
		query["facilityId"] = filter.FacilityID
	}
	if filter.CoachID != "" {
		query["coachId"] = filter.CoachID
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if filter.From != nil && filter.To != nil {
		// Interval overlap: existing.start < to AND existing.end > from.
		query["startTime"] = bson.M{"$lt": *filter.To}
		query["endTime"] = bson.M{"$gt": *filter.From}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// FindOverlapping returns pending/confirmed bookings on the given facility or
// coach whose interval overlaps [start, end). Either id may be empty.
func (repo *MongoBookingRepo) FindOverlapping(ctx context.Context, facilityID, coachID string, start, end time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var resourceClauses []bson.M
	if facilityID != "" {
		resourceClauses = append(resourceClauses, bson.M{"facilityId": facilityID})
	}
	if coachID != "" {
		resourceClauses = append(resourceClauses, bson.M{"coachId": coachID})
	}
	if len(resourceClauses) == 0 {
		return nil, fmt.Errorf("at least one of facility or coach id is required")
	}

	query := bson.M{
		"$or":       resourceClauses,
		"status":    bson.M{"$in": []models.BookingStatus{models.BookingStatusPending, models.BookingStatusConfirmed}},
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}

	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding overlapping bookings: %w", err)
	}
	return bookings, nil
}
