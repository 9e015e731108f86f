package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

func CreateUser(ctx context.Context, database *mongo.Database, email, name, password, role string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = database.Collection(ColUsers).InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return User{}, ErrEmailTaken
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func Authenticate(ctx context.Context, database *mongo.Database, email, password string) (User, error) {
	var u User
	err := database.Collection(ColUsers).
		FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).
		Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func GetUserByID(ctx context.Context, database *mongo.Database, id string) (User, error) {
	var u User
	err := database.Collection(ColUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func UpdateProfile(ctx context.Context, database *mongo.Database, id, name string) error {
	res, err := database.Collection(ColUsers).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"name": strings.TrimSpace(name)},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func ChangePassword(ctx context.Context, database *mongo.Database, id, old, new string) error {
	u, err := GetUserByID(ctx, database, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(old)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(new), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = database.Collection(ColUsers).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"password_hash": string(hash)},
	})
	return err
}

// EnsureAdmin creates the bootstrap admin account if no user holds the email.
func EnsureAdmin(ctx context.Context, database *mongo.Database, email, password string) error {
	_, err := CreateUser(ctx, database, email, "admin", password, "admin")
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	return err
}
