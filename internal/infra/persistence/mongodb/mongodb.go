// Package mongodb contains the concrete implementation of the Tracking
// Store persistence layer using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"rumbo/config"
	"rumbo/internal/domain/lifecycle"
	"rumbo/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle for the Tracking Store. The
// connection is pinged on startup, tracking indexes are ensured, and the
// client is disconnected on shutdown.
func New(params Params) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(params.Config.Mongo.URI)
	if params.Config.Mongo.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(params.Config.Mongo.MaxPoolSize)
	}

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureTrackingIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure tracking indexes")
			}

			params.Logger.Info("MongoDB connected",
				slog.String("database", params.Config.Mongo.Database),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}
