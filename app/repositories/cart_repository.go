package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/pkg/database"
	"bistro-boss-server/pkg/metrics"
)

// CartRepository handles carts collection operations. Cart documents are
// stored as the client posts them; the only field the server reads back is
// "user", the owning account's email.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(database.CartsCollection)}
}

// Insert stores one cart entry.
func (r *CartRepository) Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	defer metrics.ObserveDBOp(database.CartsCollection, "insert", time.Now())
	return r.col.InsertOne(ctx, doc)
}

// List returns cart entries owned by email, or every entry when email is
// empty (the admin view).
func (r *CartRepository) List(ctx context.Context, email string) ([]bson.M, error) {
	defer metrics.ObserveDBOp(database.CartsCollection, "find", time.Now())

	filter := bson.M{}
	if email != "" {
		filter["user"] = email
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var entries []bson.M
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes a cart entry by identifier.
func (r *CartRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	defer metrics.ObserveDBOp(database.CartsCollection, "delete", time.Now())
	return r.col.DeleteOne(ctx, bson.M{"_id": id})
}
