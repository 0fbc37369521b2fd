// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns production defaults for a small pharmacy fleet.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB holds the client and the service's collections.
type MongoDB struct {
	Client          *mongo.Client
	Database        *mongo.Database
	Customers       *mongo.Collection
	Medications     *mongo.Collection
	WebsterPacks    *mongo.Collection
	PackMedications *mongo.Collection
	ChecklistItems  *mongo.Collection
	AuditLogs       *mongo.Collection
}

// NewMongoDB connects with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects with custom configuration and ensures indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	// Retryable writes give the checklist write the durable acknowledgment
	// the derivation read depends on.
	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:          client,
		Database:        db,
		Customers:       db.Collection("customers"),
		Medications:     db.Collection("medications"),
		WebsterPacks:    db.Collection("webster_packs"),
		PackMedications: db.Collection("pack_medications"),
		ChecklistItems:  db.Collection("checklist_items"),
		AuditLogs:       db.Collection("audit_logs"),
	}

	if err := m.createIndexes(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// createIndexes ensures the indexes the repositories rely on. Errors on
// already-existing indexes are ignored where the definition is unchanged.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Customer name ordering and search.
	_, err := m.Customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, _ = m.Customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "medicare_number", Value: 1}},
	})

	// Barcodes identify catalog entries uniquely.
	_, _ = m.Medications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "barcode", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	// Pack listings filter by customer and status, both ordered by creation.
	_, _ = m.WebsterPacks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	_, _ = m.WebsterPacks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
	})

	// Line items and checklist items are always read by owning pack.
	_, _ = m.PackMedications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "webster_pack_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	_, _ = m.ChecklistItems.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "webster_pack_id", Value: 1}, {Key: "created_at", Value: 1}},
	})

	// Audit queries by pack and pharmacist.
	_, _ = m.AuditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pack_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	_, _ = m.AuditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pharmacist_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})

	return nil
}

// SetAuditTTL updates the TTL index on the audit_logs collection.
func (m *MongoDB) SetAuditTTL(ctx context.Context, ttlDays int) error {
	// Drop the old TTL index first; TTL options cannot be changed in place.
	_, _ = m.AuditLogs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	_, err := m.AuditLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	})
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
