package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/pkg/database"
)

func init() {
	Register("menu", SeedMenu)
}

// SeedMenu populates the menu collection with a starter card. The API has
// no write route for menu items, so this is the only in-repo way to get
// dishes into a fresh database.
func SeedMenu(ctx context.Context, db *mongo.Database) error {
	items := []interface{}{
		bson.M{
			"name":     "Roast Duck Breast",
			"recipe":   "Roasted duck breast served with spiced plum chutney.",
			"image":    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-x-370x247.jpg",
			"category": "popular",
			"price":    14.5,
		},
		bson.M{
			"name":     "Tuna Niçoise",
			"recipe":   "Seared tuna, green beans, olives, egg and anchovy dressing.",
			"image":    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-2-370x247.jpg",
			"category": "salad",
			"price":    12.5,
		},
		bson.M{
			"name":     "Escalope de Veau",
			"recipe":   "Pan-fried veal escalope with lemon butter and capers.",
			"image":    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-3-370x247.jpg",
			"category": "dinner",
			"price":    18.0,
		},
		bson.M{
			"name":     "Chicken and Walnut Salad",
			"recipe":   "Grilled chicken, toasted walnuts, grapes and tarragon mayo.",
			"image":    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-4-370x247.jpg",
			"category": "salad",
			"price":    10.0,
		},
		bson.M{
			"name":     "Fish Parmentier",
			"recipe":   "Baked white fish under a mashed potato and gruyère crust.",
			"image":    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-5-370x247.jpg",
			"category": "dinner",
			"price":    16.5,
		},
		bson.M{
			"name":     "Lemon Drizzle Tart",
			"recipe":   "Crisp pastry, sharp lemon curd, candied zest.",
			"image":    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-6-370x247.jpg",
			"category": "dessert",
			"price":    7.5,
		},
	}

	return seedIfEmpty(ctx, db, database.MenuCollection, items)
}
