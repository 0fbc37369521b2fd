package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medpak/webster-service/internal/domain/model"
)

// CustomerRepository provides customer operations backed by MongoDB.
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *MongoDB) *CustomerRepository {
	return &CustomerRepository{collection: db.Customers}
}

// Create inserts a customer and returns it with its assigned ID.
func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID returns the customer, or nil when none exists.
func (r *CustomerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	var customer model.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// List returns all customers ordered by last then first name.
func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var customers []model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Search matches the term case-insensitively against first name, last name
// and medicare number, anchored at the start of each field. Used by the
// search-as-you-type customer lookup.
func (r *CustomerRepository) Search(ctx context.Context, term string, limit int) ([]model.Customer, error) {
	if term == "" {
		return []model.Customer{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
		bson.M{"medicare_number": pattern},
	}}

	opts := options.Find().
		SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var customers []model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
