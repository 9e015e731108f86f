package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Wishlist is a per-user set of product IDs, keyed by the owning user.
type Wishlist struct {
	UserID     string    `bson:"_id" json:"userId"`
	ProductIDs []string  `bson:"product_ids" json:"productIds"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

func GetWishlist(ctx context.Context, database *mongo.Database, userID string) (Wishlist, error) {
	var wl Wishlist
	err := database.Collection(ColWishlists).FindOne(ctx, bson.M{"_id": userID}).Decode(&wl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Wishlist{UserID: userID, ProductIDs: []string{}}, nil
	}
	if err != nil {
		return Wishlist{}, err
	}
	if wl.ProductIDs == nil {
		wl.ProductIDs = []string{}
	}
	return wl, nil
}

func AddWishlistItem(ctx context.Context, database *mongo.Database, userID, productID string) (Wishlist, error) {
	_, err := database.Collection(ColWishlists).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$addToSet": bson.M{"product_ids": productID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true))
	if err != nil {
		return Wishlist{}, err
	}
	return GetWishlist(ctx, database, userID)
}

func RemoveWishlistItem(ctx context.Context, database *mongo.Database, userID, productID string) (Wishlist, error) {
	_, err := database.Collection(ColWishlists).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$pull": bson.M{"product_ids": productID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return Wishlist{}, err
	}
	return GetWishlist(ctx, database, userID)
}
