package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voyago/models"
)

// PackageRepository provides the catalog queries the chatbot needs.
type PackageRepository interface {
	All(ctx context.Context, limit int64) ([]models.TravelPackage, error)
	ByPriceBelow(ctx context.Context, limit float64) ([]models.TravelPackage, error)
	ByPriceAbove(ctx context.Context, limit float64) ([]models.TravelPackage, error)
	ByPriceRange(ctx context.Context, lower, upper float64) ([]models.TravelPackage, error)
	ByDestination(ctx context.Context, destination string) ([]models.TravelPackage, error)
	Sample(ctx context.Context, n int) ([]models.TravelPackage, error)
}

// MongoPackageRepo is the MongoDB-backed implementation.
type MongoPackageRepo struct {
	Coll *mongo.Collection
}

// NewMongoPackageRepo wraps the travel package collection.
func NewMongoPackageRepo(coll *mongo.Collection) *MongoPackageRepo {
	return &MongoPackageRepo{Coll: coll}
}

func (r *MongoPackageRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.TravelPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.Coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.TravelPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}

// All returns up to limit catalog entries.
func (r *MongoPackageRepo) All(ctx context.Context, limit int64) ([]models.TravelPackage, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, bson.M{}, opts)
}

// ByPriceBelow returns packages priced at or under the limit.
func (r *MongoPackageRepo) ByPriceBelow(ctx context.Context, limit float64) ([]models.TravelPackage, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$lte": limit}})
}

// ByPriceAbove returns packages priced at or over the limit.
func (r *MongoPackageRepo) ByPriceAbove(ctx context.Context, limit float64) ([]models.TravelPackage, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": limit}})
}

// ByPriceRange returns packages priced within [lower, upper].
func (r *MongoPackageRepo) ByPriceRange(ctx context.Context, lower, upper float64) ([]models.TravelPackage, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": lower, "$lte": upper}})
}

// ByDestination returns packages whose destination matches, case
// insensitively.
func (r *MongoPackageRepo) ByDestination(ctx context.Context, destination string) ([]models.TravelPackage, error) {
	return r.find(ctx, bson.M{"destination": bson.M{"$regex": destination, "$options": "i"}})
}

// Sample returns up to n random catalog entries.
func (r *MongoPackageRepo) Sample(ctx context.Context, n int) ([]models.TravelPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}
	cursor, err := r.Coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.TravelPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}
