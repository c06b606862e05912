package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/loads-service/internal/domain"
)

const loadsCollection = "loads"

// ErrInvalidID marks identifiers that are not well-formed storage keys.
// Callers treat it as not-found but may log it distinctly.
var ErrInvalidID = errors.New("invalid object id")

// LoadRepository encapsulates load document persistence.
type LoadRepository interface {
	Insert(ctx context.Context, load *domain.Load) error
	FindAll(ctx context.Context) ([]domain.Load, error)
	FindByID(ctx context.Context, id string) (*domain.Load, error)
	// Update applies the provided fields to the matching document, leaving
	// server-stamped fields untouched. Returns the matched document count.
	Update(ctx context.Context, id string, load *domain.Load) (int64, error)
	// Delete removes the matching document, returning the deleted count.
	Delete(ctx context.Context, id string) (int64, error)
}

type loadRepository struct {
	collection *mongo.Collection
}

// NewLoadRepository instantiates the repository.
func NewLoadRepository(db *mongo.Database) LoadRepository {
	r := &loadRepository{}
	if db != nil {
		r.collection = db.Collection(loadsCollection)
	}
	return r
}

func (r *loadRepository) Insert(ctx context.Context, load *domain.Load) error {
	res, err := r.collection.InsertOne(ctx, load)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		load.ID = id
	}
	return nil
}

func (r *loadRepository) FindAll(ctx context.Context) ([]domain.Load, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	loads := []domain.Load{}
	if err := cursor.All(ctx, &loads); err != nil {
		return nil, err
	}
	return loads, nil
}

func (r *loadRepository) FindByID(ctx context.Context, id string) (*domain.Load, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var load domain.Load
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&load); err != nil {
		return nil, err
	}
	return &load, nil
}

func (r *loadRepository) Update(ctx context.Context, id string, load *domain.Load) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	// $set only the caller-provided fields; dateAdded stays as stamped at
	// creation.
	set := bson.M{
		"origin":      load.Origin,
		"destination": load.Destination,
		"product":     load.Product,
		"weight":      load.Weight,
		"type":        load.Type,
	}
	for k, v := range load.Extra {
		set[k] = v
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *loadRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
