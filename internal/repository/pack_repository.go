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

// PackRepository provides webster pack operations backed by MongoDB.
// It also owns the pack's line items and seeds its checklist, since those
// documents live and die with the pack.
type PackRepository struct {
	packs     *mongo.Collection
	packMeds  *mongo.Collection
	checklist *mongo.Collection
}

// NewPackRepository creates a new pack repository.
func NewPackRepository(db *MongoDB) *PackRepository {
	return &PackRepository{
		packs:     db.WebsterPacks,
		packMeds:  db.PackMedications,
		checklist: db.ChecklistItems,
	}
}

// Create inserts the pack together with its medication line items and one
// checklist item per step name. Line items and checklist items get creation
// timestamps in slice order so "load order" is stable on later reads.
func (r *PackRepository) Create(ctx context.Context, pack *model.WebsterPack, meds []model.PackMedication, steps []string) (*model.WebsterPack, error) {
	if pack.ID.IsZero() {
		pack.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if pack.CreatedAt.IsZero() {
		pack.CreatedAt = now
	}

	if _, err := r.packs.InsertOne(ctx, pack); err != nil {
		return nil, err
	}

	if len(meds) > 0 {
		docs := make([]interface{}, len(meds))
		for i := range meds {
			meds[i].ID = primitive.NewObjectID()
			meds[i].PackID = pack.ID
			// Strictly increasing timestamps preserve request order.
			meds[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
			meds[i].Medication = nil
			docs[i] = meds[i]
		}
		if _, err := r.packMeds.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}

	if len(steps) > 0 {
		docs := make([]interface{}, len(steps))
		for i, step := range steps {
			docs[i] = model.ChecklistItem{
				ID:        primitive.NewObjectID(),
				PackID:    pack.ID,
				StepName:  step,
				Completed: false,
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			}
		}
		if _, err := r.checklist.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
	}

	return pack, nil
}

// GetByID returns the bare pack, or nil when none exists.
func (r *PackRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	var pack model.WebsterPack
	err := r.packs.FindOne(ctx, bson.M{"_id": id}).Decode(&pack)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pack, nil
}

// GetDetail returns the pack with its customer joined, or nil when none
// exists.
func (r *PackRepository) GetDetail(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.packs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var packs []model.WebsterPack
	if err := cursor.All(ctx, &packs); err != nil {
		return nil, err
	}
	if len(packs) == 0 {
		return nil, nil
	}
	return &packs[0], nil
}

// List returns packs with customers joined, newest first, honoring the
// status and customer filters.
func (r *PackRepository) List(ctx context.Context, opts PackListOptions) ([]model.WebsterPack, error) {
	match := bson.M{}
	if opts.Status != "" {
		match["status"] = opts.Status
	}
	if opts.CustomerID != nil {
		match["customer_id"] = *opts.CustomerID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	if opts.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(opts.Limit)}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customer_id",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}}},
	)

	cursor, err := r.packs.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var packs []model.WebsterPack
	if err := cursor.All(ctx, &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

// ListMedications returns the pack's line items in load order with their
// catalog entries joined. Load order is creation order; the verification
// matcher depends on it for the duplicate-barcode tie-break.
func (r *PackRepository) ListMedications(ctx context.Context, packID primitive.ObjectID) ([]model.PackMedication, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"webster_pack_id": packID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "medications",
			"localField":   "medication_id",
			"foreignField": "_id",
			"as":           "medication",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$medication", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.packMeds.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var meds []model.PackMedication
	if err := cursor.All(ctx, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

// CompleteStatusCAS conditionally transitions the pack to completed. The
// filter excludes already-completed packs, so exactly one of any number of
// concurrent callers observes the transition.
func (r *PackRepository) CompleteStatusCAS(ctx context.Context, packID primitive.ObjectID) (bool, error) {
	result, err := r.packs.UpdateOne(ctx,
		bson.M{"_id": packID, "status": bson.M{"$ne": model.StatusCompleted}},
		bson.M{"$set": bson.M{"status": model.StatusCompleted}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// CountByStatus returns pack counts grouped by status for the dashboard.
func (r *PackRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.packs.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var counts []model.StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
