package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/pkg/database"
)

func init() {
	Register("reviews", SeedReviews)
}

// SeedReviews populates the reviews collection shown on the landing page.
func SeedReviews(ctx context.Context, db *mongo.Database) error {
	reviews := []interface{}{
		bson.M{
			"name":    "Matteo Rossi",
			"details": "The duck was perfectly cooked and the service was quick even on a Friday night.",
			"rating":  5,
		},
		bson.M{
			"name":    "Amelia Clarke",
			"details": "Lovely atmosphere. The salad portions could be bigger for the price.",
			"rating":  4,
		},
		bson.M{
			"name":    "Farhan Ahmed",
			"details": "Ordered through the site, pickup was ready on time. Will order again.",
			"rating":  5,
		},
	}

	return seedIfEmpty(ctx, db, database.ReviewsCollection, reviews)
}
