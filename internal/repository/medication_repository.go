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

// MedicationRepository provides catalog operations backed by MongoDB.
type MedicationRepository struct {
	collection *mongo.Collection
}

// NewMedicationRepository creates a new medication repository.
func NewMedicationRepository(db *MongoDB) *MedicationRepository {
	return &MedicationRepository{collection: db.Medications}
}

// Create inserts a catalog entry. The unique barcode index rejects duplicates.
func (r *MedicationRepository) Create(ctx context.Context, med *model.Medication) (*model.Medication, error) {
	if med.ID.IsZero() {
		med.ID = primitive.NewObjectID()
	}
	if med.CreatedAt.IsZero() {
		med.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, med)
	if err != nil {
		return nil, err
	}
	return med, nil
}

// GetByID returns the catalog entry, or nil when none exists.
func (r *MedicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medication, error) {
	var med model.Medication
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&med)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &med, nil
}

// GetByBarcode looks up a catalog entry by exact barcode. Case-sensitive.
func (r *MedicationRepository) GetByBarcode(ctx context.Context, barcode string) (*model.Medication, error) {
	var med model.Medication
	err := r.collection.FindOne(ctx, bson.M{"barcode": barcode}).Decode(&med)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &med, nil
}

// List returns catalog entries ordered by brand name.
func (r *MedicationRepository) List(ctx context.Context, limit int) ([]model.Medication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "brand_name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var meds []model.Medication
	if err := cursor.All(ctx, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}
