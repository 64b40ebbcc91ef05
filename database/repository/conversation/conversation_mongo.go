package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"gamedey/database"
	"gamedey/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationRepository defines the persistence interface for per-booking
// chat channel records.
type ConversationRepository interface {
	FindByBookingID(ctx context.Context, bookingID string) ([]models.Conversation, error)
	Create(ctx context.Context, conversation *models.Conversation) error
	EnsureIndexes() error
}

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo constructs a new instance of MongoConversationRepo.
func NewMongoConversationRepo() ConversationRepository {
	return &MongoConversationRepo{
		coll: database.Collection("conversations"),
	}
}

// FindByBookingID returns all conversations provisioned for a booking.
func (repo *MongoConversationRepo) FindByBookingID(ctx context.Context, bookingID string) ([]models.Conversation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("error finding conversations for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("error decoding conversations: %w", err)
	}
	return conversations, nil
}

// Create inserts a new conversation document.
func (repo *MongoConversationRepo) Create(ctx context.Context, conversation *models.Conversation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, conversation)
	if err != nil {
		return fmt.Errorf("error creating conversation: %w", err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the conversations collection.
// The unique (bookingId, counterpartType) index backs provisioning idempotency.
func (repo *MongoConversationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}, {Key: "counterpartType", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("booking_counterpart_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	return nil
}
