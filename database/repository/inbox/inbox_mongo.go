package inboxRepo

import (
	"context"
	"fmt"
	"time"

	"amonarq/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInboxRepo implements InboxRepository using MongoDB.
type MongoInboxRepo struct {
	coll *mongo.Collection
}

// NewMongoInboxRepo creates a new instance of InboxRepository using MongoDB.
func NewMongoInboxRepo(db *mongo.Database) InboxRepository {
	repo := &MongoInboxRepo{coll: db.Collection("contacts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inbox indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInboxRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isRead", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new contact message.
func (r *MongoInboxRepo) Create(msg *models.ContactMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// GetAll retrieves all messages, newest first.
func (r *MongoInboxRepo) GetAll() ([]models.ContactMessage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a message by its ID.
func (r *MongoInboxRepo) GetByID(id string) (*models.ContactMessage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var msg models.ContactMessage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&msg); err != nil {
		return nil, fmt.Errorf("failed to fetch contact message %s: %w", id, err)
	}
	return &msg, nil
}

// MarkRead flags a message as read and returns the updated document.
func (r *MongoInboxRepo) MarkRead(id string) (*models.ContactMessage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var msg models.ContactMessage
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&msg); err != nil {
		return nil, fmt.Errorf("failed to mark message %s as read: %w", id, err)
	}
	return &msg, nil
}

// MarkReplied flags a message as replied.
func (r *MongoInboxRepo) MarkReplied(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isReplied": true, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark message %s as replied: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact message with id %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a message permanently.
func (r *MongoInboxRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact message %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact message with id %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Count returns the total number of messages.
func (r *MongoInboxRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}

// CountUnread returns the number of unread messages.
func (r *MongoInboxRepo) CountUnread() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"isRead": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
