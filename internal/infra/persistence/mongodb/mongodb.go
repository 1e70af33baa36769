// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"million/config"
	"million/internal/domain/lifecycle"
	"million/internal/errors"
	"million/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 10 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and manages the client through the
// Fx lifecycle. Indexes are ensured on startup.
func New(params Params) (*mongo.Database, error) {
	timeout := params.Config.Mongo.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetTimeout(timeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure MongoDB indexes")
			}

			params.Logger.Info("MongoDB connected",
				slog.String("database", params.Config.Mongo.Database),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the queries depend on. CreateMany is
// idempotent for identical definitions.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(model.UserModel{}.CollectionName()).
		Indexes().CreateMany(ctx, userIndexes); err != nil {
		return errors.Wrap(err, "users indexes")
	}

	propertyIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "address", Value: 1}, {Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "idOwner", Value: 1}}},
	}
	if _, err := db.Collection(model.PropertyModel{}.CollectionName()).
		Indexes().CreateMany(ctx, propertyIndexes); err != nil {
		return errors.Wrap(err, "properties indexes")
	}

	ownerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	if _, err := db.Collection(model.OwnerModel{}.CollectionName()).
		Indexes().CreateMany(ctx, ownerIndexes); err != nil {
		return errors.Wrap(err, "owners indexes")
	}

	imageIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "idProperty", Value: 1}, {Key: "enabled", Value: 1}}},
	}
	if _, err := db.Collection(model.PropertyImageModel{}.CollectionName()).
		Indexes().CreateMany(ctx, imageIndexes); err != nil {
		return errors.Wrap(err, "property_images indexes")
	}

	traceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "idProperty", Value: 1}, {Key: "dateSale", Value: -1}}},
	}
	if _, err := db.Collection(model.PropertyTraceModel{}.CollectionName()).
		Indexes().CreateMany(ctx, traceIndexes); err != nil {
		return errors.Wrap(err, "property_traces indexes")
	}

	return nil
}
