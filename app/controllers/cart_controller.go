package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/app/models"
	"bistro-boss-server/pkg/bind"
	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/response"
)

// CartStore is the carts access the controller needs.
type CartStore interface {
	Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	List(ctx context.Context, email string) ([]bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// CartController handles the shopping-cart routes. None of them are gated;
// entries are scoped by the email query parameter only. That exposes
// cross-user cart access, a known policy gap carried from the live site,
// not to be closed without product sign-off.
type CartController struct {
	store CartStore
}

func NewCartController(store CartStore) *CartController {
	return &CartController{store: store}
}

// Add stores one cart entry exactly as posted.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var entry bson.M
	if err := bind.JSON(r, &entry); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	res, err := c.store.Insert(r.Context(), entry)
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart insert failed", "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, models.NewInsertResult(res))
}

// List returns cart entries. With an email query parameter only that
// account's entries are returned; without one, every entry (the admin view).
func (c *CartController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.store.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart list failed", "error", err)
		response.InternalError(w)
		return
	}
	if entries == nil {
		entries = []bson.M{}
	}
	response.JSON(w, http.StatusOK, entries)
}

// Remove deletes a cart entry by identifier.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	res, err := c.store.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart delete failed", "id", id.Hex(), "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, models.NewDeleteResult(res))
}
