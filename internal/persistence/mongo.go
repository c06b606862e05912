package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"

	"github.com/spec-kit/loads-service/internal/config"
)

// Mongo wraps access to the document store client. The client is built once
// at startup and injected, so there is no lazy global to guard.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to MongoDB when a URI is provided.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	if cfg.URI == "" {
		logger.Warn("MONGO_URL not provided; skipping database connection")
		return &Mongo{}, nil
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout()))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{Client: client, Database: client.Database(cfg.Database)}, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}

// Ping verifies connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return mongo.ErrClientDisconnected
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle within the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	if m == nil || m.Database == nil {
		return nil
	}
	return m.Database.Collection(name)
}

// EnsureIndexes creates the indexes the service relies on. The unique email
// index makes duplicate registration a storage-level conflict even when two
// requests race past the pre-insert lookup.
func EnsureIndexes(ctx context.Context, m *Mongo, logger *zap.Logger) error {
	if m == nil || m.Database == nil {
		logger.Warn("no mongo database available; skipping index bootstrap")
		return nil
	}

	name, err := m.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	logger.Info("index ensured", zap.String("collection", "users"), zap.String("index", name))
	return nil
}
