package controllers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"bistro-boss-server/pkg/cache"
	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/metrics"
	"bistro-boss-server/pkg/response"
)

const (
	menuCacheKey = "menu:list"
	listCacheTTL = time.Minute
)

// MenuStore is the read-only menu access the controller needs.
type MenuStore interface {
	All(ctx context.Context) ([]bson.M, error)
}

// MenuController serves the menu listing, the site's hottest read. The
// listing is cached in Redis; a cold or absent cache falls through to Mongo.
type MenuController struct {
	store MenuStore
}

func NewMenuController(store MenuStore) *MenuController {
	return &MenuController{store: store}
}

// List returns every menu item.
func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	var items []bson.M
	if hit := cache.Get(menuCacheKey, &items); hit {
		metrics.RecordCache(menuCacheKey, true)
		response.JSON(w, http.StatusOK, items)
		return
	}
	metrics.RecordCache(menuCacheKey, false)

	items, err := c.store.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu list failed", "error", err)
		response.InternalError(w)
		return
	}
	if items == nil {
		items = []bson.M{}
	}

	if err := cache.Set(menuCacheKey, items, listCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("menu cache set failed", "error", err)
	}

	response.JSON(w, http.StatusOK, items)
}
