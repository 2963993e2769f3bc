package search

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercato-shop/mercato-backend/models"
)

// MongoProductStore implements ProductStore over the products collection.
type MongoProductStore struct {
	coll *mongo.Collection
}

func NewMongoProductStore(coll *mongo.Collection) *MongoProductStore {
	return &MongoProductStore{coll: coll}
}

func (s *MongoProductStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0, limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProductStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.coll.CountDocuments(ctx, filter)
}
