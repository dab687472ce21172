// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"registrar/config"
	"registrar/internal/domain/lifecycle"
	"registrar/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

const studentsCollection = "students"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle. The client is a shared, long-lived
// resource: it is pinged once at process start and disconnected at shutdown
// through fx lifecycle hooks. Unique indexes backing the registration
// invariants are ensured on start.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(params.Config.Mongo.URI))
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

			if err := ensureStudentIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// ensureStudentIndexes creates the unique indexes on email and id. The email
// index is what makes concurrent duplicate registrations lose at write time
// instead of both passing the read-first existence check.
func ensureStudentIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(studentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to ensure student indexes")
	}

	return nil
}
