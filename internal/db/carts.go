package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartItem captures the unit price at the moment the product was added, so a
// later catalog price change does not silently reprice an open cart.
type CartItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Cart is keyed by the owning user; one cart per user.
type Cart struct {
	UserID    string     `bson:"_id" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// Subtotal sums unit price times quantity over the cart lines.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

func GetCart(ctx context.Context, database *mongo.Database, userID string) (Cart, error) {
	var cart Cart
	err := database.Collection(ColCarts).FindOne(ctx, bson.M{"_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Cart{UserID: userID, Items: []CartItem{}}, nil
	}
	if err != nil {
		return Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []CartItem{}
	}
	return cart, nil
}

// AddCartItem appends a line or, when the product is already in the cart,
// bumps its quantity.
func AddCartItem(ctx context.Context, database *mongo.Database, userID string, item CartItem) (Cart, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	cart, err := GetCart(ctx, database, userID)
	if err != nil {
		return Cart{}, err
	}
	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}
	return saveCart(ctx, database, cart)
}

// SetCartItemQuantity updates a line's quantity; zero or less removes it.
func SetCartItemQuantity(ctx context.Context, database *mongo.Database, userID, productID string, qty int) (Cart, error) {
	cart, err := GetCart(ctx, database, userID)
	if err != nil {
		return Cart{}, err
	}
	items := make([]CartItem, 0, len(cart.Items))
	found := false
	for _, it := range cart.Items {
		if it.ProductID == productID {
			found = true
			if qty > 0 {
				it.Quantity = qty
				items = append(items, it)
			}
			continue
		}
		items = append(items, it)
	}
	if !found {
		return Cart{}, ErrNotFound
	}
	cart.Items = items
	return saveCart(ctx, database, cart)
}

func RemoveCartItem(ctx context.Context, database *mongo.Database, userID, productID string) (Cart, error) {
	return SetCartItemQuantity(ctx, database, userID, productID, 0)
}

func ClearCart(ctx context.Context, database *mongo.Database, userID string) error {
	_, err := database.Collection(ColCarts).DeleteOne(ctx, bson.M{"_id": userID})
	return err
}

func saveCart(ctx context.Context, database *mongo.Database, cart Cart) (Cart, error) {
	cart.UpdatedAt = time.Now().UTC()
	_, err := database.Collection(ColCarts).ReplaceOne(ctx,
		bson.M{"_id": cart.UserID}, cart, options.Replace().SetUpsert(true))
	if err != nil {
		return Cart{}, err
	}
	return cart, nil
}
