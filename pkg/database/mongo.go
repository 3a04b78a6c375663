// Package database opens the MongoDB connection shared by the repositories.
//
// The client is returned to the caller rather than stored in a package
// global, so repositories receive the handle through their constructors and
// tests can substitute doubles.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the ordering site.
const (
	UsersCollection   = "usersInfo"
	MenuCollection    = "menu"
	CartsCollection   = "carts"
	ReviewsCollection = "reviews"
)

// Connect opens a client against uri, pings it, and returns the named
// database. Returns an error instead of calling log.Fatal so the caller can
// shut down gracefully.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("database: connect: %w", err)
	}

	// Verify connection is live.
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("database: ping: %w", err)
	}

	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on usersInfo.email is what makes registration an atomic
// insert-or-conflict instead of a racy check-then-insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("database: ensure email index: %w", err)
	}
	return nil
}
