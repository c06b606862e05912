package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/loads-service/internal/domain"
)

const usersCollection = "users"

// UserRepository defines persistence access for identity records.
// Not-found lookups surface mongo.ErrNoDocuments.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ReplacePasswordHash(ctx context.Context, email, hash string) (int64, error)
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository returns a Mongo-backed implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	r := &userRepository{}
	if db != nil {
		r.collection = db.Collection(usersCollection)
	}
	return r
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ReplacePasswordHash swaps the stored hash for the account matching email,
// returning the number of documents modified.
func (r *userRepository) ReplacePasswordHash(ctx context.Context, email, hash string) (int64, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password_hash": hash}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
