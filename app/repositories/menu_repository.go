package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/pkg/database"
	"bistro-boss-server/pkg/metrics"
)

// MenuRepository reads the menu collection. The API has no write path for
// menu items; they are seeded out of band (see database/seeders).
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(database.MenuCollection)}
}

// All returns every menu item document.
func (r *MenuRepository) All(ctx context.Context) ([]bson.M, error) {
	defer metrics.ObserveDBOp(database.MenuCollection, "find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var items []bson.M
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
