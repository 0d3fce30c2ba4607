package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"amonarq/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsRepository defines access to the singleton settings record.
type SettingsRepository interface {
	// Get retrieves the settings record, or mongo.ErrNoDocuments if it has
	// never been written.
	Get() (*models.Settings, error)
	// Save replaces the singleton settings record, creating it if absent.
	Save(settings *models.Settings) error
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &MongoSettingsRepo{coll: db.Collection("settings")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get retrieves the settings record.
func (r *MongoSettingsRepo) Get() (*models.Settings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var settings models.Settings
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &settings, nil
}

// Save replaces the singleton settings record, creating it if absent.
func (r *MongoSettingsRepo) Save(settings *models.Settings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{}, settings, opts); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
