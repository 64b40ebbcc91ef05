package directoryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamedey/database"
	"gamedey/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDirectoryRepo implements DirectoryRepository using MongoDB.
type MongoDirectoryRepo struct {
	sportColl    *mongo.Collection
	facilityColl *mongo.Collection
	coachColl    *mongo.Collection
	packageColl  *mongo.Collection
}

// NewMongoDirectoryRepo constructs a new instance of MongoDirectoryRepo.
func NewMongoDirectoryRepo() DirectoryRepository {
	return &MongoDirectoryRepo{
		sportColl:    database.Collection("sports"),
		facilityColl: database.Collection("facilities"),
		coachColl:    database.Collection("coaches"),
		packageColl:  database.Collection("packages"),
	}
}

func (repo *MongoDirectoryRepo) findOne(ctx context.Context, coll *mongo.Collection, filter bson.M, out any, what string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := coll.FindOne(ctx, filter).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching %s: %w", what, err)
	}
	return nil
}

// FindSport retrieves a sport by ID.
func (repo *MongoDirectoryRepo) FindSport(ctx context.Context, sportID string) (*models.Sport, error) {
	var sport models.Sport
	if err := repo.findOne(ctx, repo.sportColl, bson.M{"id": sportID}, &sport, "sport "+sportID); err != nil {
		return nil, err
	}
	return &sport, nil
}

// FindFacility retrieves a facility by ID.
func (repo *MongoDirectoryRepo) FindFacility(ctx context.Context, facilityID string) (*models.Facility, error) {
	var facility models.Facility
	if err := repo.findOne(ctx, repo.facilityColl, bson.M{"id": facilityID}, &facility, "facility "+facilityID); err != nil {
		return nil, err
	}
	return &facility, nil
}

// FindCoach retrieves a coach by ID.
func (repo *MongoDirectoryRepo) FindCoach(ctx context.Context, coachID string) (*models.Coach, error) {
	var coach models.Coach
	if err := repo.findOne(ctx, repo.coachColl, bson.M{"id": coachID}, &coach, "coach "+coachID); err != nil {
		return nil, err
	}
	return &coach, nil
}

// FindPackage retrieves a session package by ID.
func (repo *MongoDirectoryRepo) FindPackage(ctx context.Context, packageID string) (*models.SessionPackage, error) {
	var pkg models.SessionPackage
	if err := repo.findOne(ctx, repo.packageColl, bson.M{"id": packageID}, &pkg, "package "+packageID); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// FindCoachByUserID retrieves the coach profile owned by the given user, if any.
func (repo *MongoDirectoryRepo) FindCoachByUserID(ctx context.Context, userID string) (*models.Coach, error) {
	var coach models.Coach
	if err := repo.findOne(ctx, repo.coachColl, bson.M{"userId": userID}, &coach, "coach for user "+userID); err != nil {
		return nil, err
	}
	return &coach, nil
}

// FindFacilityByOwnerID retrieves the facility owned by the given user, if any.
func (repo *MongoDirectoryRepo) FindFacilityByOwnerID(ctx context.Context, userID string) (*models.Facility, error) {
	var facility models.Facility
	if err := repo.findOne(ctx, repo.facilityColl, bson.M{"ownerId": userID}, &facility, "facility for owner "+userID); err != nil {
		return nil, err
	}
	return &facility, nil
}
