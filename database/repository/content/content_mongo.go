package contentRepo

import (
	"context"
	"fmt"
	"time"

	"amonarq/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	coll *mongo.Collection
}

// NewMongoContentRepo creates a new instance of ContentRepository using MongoDB.
func NewMongoContentRepo(db *mongo.Database) ContentRepository {
	repo := &MongoContentRepo{coll: db.Collection("contents")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create content indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sectionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isDeleted", Value: 1}}},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves all non-deleted sections sorted by (order, sectionId).
func (r *MongoContentRepo) GetAll() ([]models.ContentSection, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "sectionId", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isDeleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content sections: %w", err)
	}
	defer cursor.Close(ctx)

	var sections []models.ContentSection
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode content sections: %w", err)
	}
	return sections, nil
}

// GetAllRaw retrieves every section row, tombstones included.
func (r *MongoContentRepo) GetAllRaw() ([]models.ContentSection, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "sectionId", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content sections: %w", err)
	}
	defer cursor.Close(ctx)

	var sections []models.ContentSection
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode content sections: %w", err)
	}
	return sections, nil
}

// GetBySectionID retrieves a section by its id, tombstoned rows included.
func (r *MongoContentRepo) GetBySectionID(sectionID string) (*models.ContentSection, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var section models.ContentSection
	if err := r.coll.FindOne(ctx, bson.M{"sectionId": sectionID}).Decode(&section); err != nil {
		return nil, fmt.Errorf("failed to fetch section %s: %w", sectionID, err)
	}
	return &section, nil
}

// upsertDoc builds the full-field $set document for one section.
func upsertDoc(s models.ContentSection, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"sectionId": s.SectionID,
			"title":     s.Title,
			"subtitle":  s.Subtitle,
			"body":      s.Body,
			"image":     s.Image,
			"images":    s.Images,
			"order":     s.Order,
			"isActive":  s.IsActive,
			"isDeleted": s.IsDeleted,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
}

// Upsert creates or fully overwrites a section keyed by sectionId.
func (r *MongoContentRepo) Upsert(section models.ContentSection) (*models.ContentSection, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated models.ContentSection
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"sectionId": section.SectionID}, upsertDoc(section, time.Now()), opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert section %s: %w", section.SectionID, err)
	}
	return &updated, nil
}

// BulkUpsert applies create-or-replace for each section in one unordered bulk write.
func (r *MongoContentRepo) BulkUpsert(sections []models.ContentSection) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(sections))
	for _, s := range sections {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"sectionId": s.SectionID}).
			SetUpdate(upsertDoc(s, now)).
			SetUpsert(true))
	}

	opts := options.BulkWrite().SetOrdered(false)
	if _, err := r.coll.BulkWrite(ctx, writes, opts); err != nil {
		return fmt.Errorf("failed to bulk upsert %d sections: %w", len(sections), err)
	}
	return nil
}

// SoftDelete tombstones a section by id.
func (r *MongoContentRepo) SoftDelete(sectionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"sectionId": sectionID,
			"isDeleted": true,
			"isActive":  false,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"sectionId": sectionID}, update, opts); err != nil {
		return fmt.Errorf("failed to delete section %s: %w", sectionID, err)
	}
	return nil
}
