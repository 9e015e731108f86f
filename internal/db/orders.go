package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

var ErrEmptyCart = errors.New("cart is empty")

type Address struct {
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Order snapshots the cart lines and totals at placement time.
type Order struct {
	ID        string     `bson:"_id" json:"id"`
	Number    string     `bson:"number" json:"number"`
	UserID    string     `bson:"user_id" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	Subtotal  float64    `bson:"subtotal" json:"subtotal"`
	Status    string     `bson:"status" json:"status"`
	Address   Address    `bson:"address" json:"address"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// PlaceOrder turns the user's current cart into a pending order and clears
// the cart.
func PlaceOrder(ctx context.Context, database *mongo.Database, userID string, addr Address) (Order, error) {
	cart, err := GetCart(ctx, database, userID)
	if err != nil {
		return Order{}, err
	}
	if len(cart.Items) == 0 {
		return Order{}, ErrEmptyCart
	}
	now := time.Now().UTC()
	id := uuid.NewString()
	order := Order{
		ID:        id,
		Number:    orderNumber(id, now),
		UserID:    userID,
		Items:     cart.Items,
		Subtotal:  cart.Subtotal(),
		Status:    OrderPending,
		Address:   addr,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := database.Collection(ColOrders).InsertOne(ctx, order); err != nil {
		return Order{}, err
	}
	if err := ClearCart(ctx, database, userID); err != nil {
		return Order{}, err
	}
	return order, nil
}

func orderNumber(id string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("SO-%s-%s", now.Format("20060102"), suffix)
}

func ListOrders(ctx context.Context, database *mongo.Database, userID string) ([]Order, error) {
	cur, err := database.Collection(ColOrders).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	orders := make([]Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order, scoped to its owner.
func GetOrder(ctx context.Context, database *mongo.Database, userID, orderID string) (Order, error) {
	var order Order
	err := database.Collection(ColOrders).
		FindOne(ctx, bson.M{"_id": orderID, "user_id": userID}).
		Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func ListAllOrders(ctx context.Context, database *mongo.Database) ([]Order, error) {
	cur, err := database.Collection(ColOrders).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	orders := make([]Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func UpdateOrderStatus(ctx context.Context, database *mongo.Database, orderID, status string) error {
	switch status {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
	default:
		return fmt.Errorf("unknown order status %q", status)
	}
	res, err := database.Collection(ColOrders).UpdateByID(ctx, orderID, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
