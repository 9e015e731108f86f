package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/catalog"
)

// SeedProducts upserts the given products by ID. Existing documents are
// replaced, so reseeding is idempotent.
func SeedProducts(ctx context.Context, database *mongo.Database, products []catalog.Product) (int, error) {
	col := database.Collection(ColProducts)
	count := 0
	for _, p := range products {
		_, err := col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
