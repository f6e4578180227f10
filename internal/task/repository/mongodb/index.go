package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes backing the list filters and the default sort.
// It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "priority", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
	})
	return err
}
