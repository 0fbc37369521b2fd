package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medpak/webster-service/internal/domain/model"
)

// ChecklistRepository provides checklist item operations backed by MongoDB.
type ChecklistRepository struct {
	collection *mongo.Collection
}

// NewChecklistRepository creates a new checklist repository.
func NewChecklistRepository(db *MongoDB) *ChecklistRepository {
	return &ChecklistRepository{collection: db.ChecklistItems}
}

// ListByPack returns the pack's checklist in creation order.
func (r *ChecklistRepository) ListByPack(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"webster_pack_id": packID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var items []model.ChecklistItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the checklist item, or nil when none exists.
func (r *ChecklistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// MarkCompleted sets the completion fields on a single item. The filter pins
// both the item ID and the owning pack, so an item from another pack can
// never be completed through a stale UI. Returns the updated item, or nil
// when no item matched.
func (r *ChecklistRepository) MarkCompleted(ctx context.Context, itemID, packID, pharmacistID primitive.ObjectID, completedAt time.Time, notes string) (*model.ChecklistItem, error) {
	set := bson.M{
		"completed":     true,
		"completed_at":  completedAt,
		"pharmacist_id": pharmacistID,
	}
	if notes != "" {
		set["notes"] = notes
	}

	var item model.ChecklistItem
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": itemID, "webster_pack_id": packID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
