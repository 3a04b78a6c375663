package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/pkg/database"
	"bistro-boss-server/pkg/metrics"
)

// ReviewRepository reads the reviews collection, read-only like menu.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(database.ReviewsCollection)}
}

// All returns every client review document.
func (r *ReviewRepository) All(ctx context.Context) ([]bson.M, error) {
	defer metrics.ObserveDBOp(database.ReviewsCollection, "find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var reviews []bson.M
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
