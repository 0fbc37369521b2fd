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

// AuditRepository persists workflow audit entries.
type AuditRepository struct {
	collection *mongo.Collection
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *MongoDB) *AuditRepository {
	return &AuditRepository{collection: db.AuditLogs}
}

// Create inserts a single audit entry.
func (r *AuditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts audit entries in bulk.
func (r *AuditRepository) CreateMany(ctx context.Context, entries []*model.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		if entry.ID.IsZero() {
			entry.ID = primitive.NewObjectID()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func auditFilter(q model.AuditQuery) bson.M {
	filter := bson.M{}
	if q.PackID != "" {
		filter["pack_id"] = q.PackID
	}
	if q.PharmacistID != "" {
		filter["pharmacist_id"] = q.PharmacistID
	}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Since != nil || q.Until != nil {
		timeFilter := bson.M{}
		if q.Since != nil {
			timeFilter["$gte"] = *q.Since
		}
		if q.Until != nil {
			timeFilter["$lte"] = *q.Until
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// Query returns audit entries matching the filter, newest first.
func (r *AuditRepository) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		opts.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, auditFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []model.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of audit entries matching the filter.
func (r *AuditRepository) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, auditFilter(q))
}
