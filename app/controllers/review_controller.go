package controllers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"bistro-boss-server/pkg/cache"
	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/metrics"
	"bistro-boss-server/pkg/response"
)

const reviewsCacheKey = "reviews:list"

// ReviewStore is the read-only reviews access the controller needs.
type ReviewStore interface {
	All(ctx context.Context) ([]bson.M, error)
}

// ReviewController serves client reviews, cached like the menu listing.
type ReviewController struct {
	store ReviewStore
}

func NewReviewController(store ReviewStore) *ReviewController {
	return &ReviewController{store: store}
}

// List returns every client review.
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	var reviews []bson.M
	if hit := cache.Get(reviewsCacheKey, &reviews); hit {
		metrics.RecordCache(reviewsCacheKey, true)
		response.JSON(w, http.StatusOK, reviews)
		return
	}
	metrics.RecordCache(reviewsCacheKey, false)

	reviews, err := c.store.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("review list failed", "error", err)
		response.InternalError(w)
		return
	}
	if reviews == nil {
		reviews = []bson.M{}
	}

	if err := cache.Set(reviewsCacheKey, reviews, listCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("review cache set failed", "error", err)
	}

	response.JSON(w, http.StatusOK, reviews)
}
