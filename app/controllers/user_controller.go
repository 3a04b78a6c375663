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

// UserStore is the usersInfo access the controller needs. Implemented by
// repositories.UserRepository; tests substitute an in-memory double.
type UserStore interface {
	Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]bson.M, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	MakeAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
}

// UserController handles registration and the admin-only user management
// routes.
type UserController struct {
	store UserStore
}

func NewUserController(store UserStore) *UserController {
	return &UserController{store: store}
}

// Register stores a new user document unless the email is already taken.
// The duplicate case is a 200 with a null insertedId, not an HTTP error;
// the frontend treats registration as idempotent.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var info bson.M
	if err := bind.JSON(r, &info); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	res, err := c.store.Insert(r.Context(), info)
	if mongo.IsDuplicateKeyError(err) {
		response.JSON(w, http.StatusOK, models.NewDuplicateUser())
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("user insert failed", "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, models.NewInsertResult(res))
}

// List returns every user document. Admin-gated by the route table.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.store.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("user list failed", "error", err)
		response.InternalError(w)
		return
	}
	if users == nil {
		users = []bson.M{}
	}
	response.JSON(w, http.StatusOK, users)
}

// AdminCheck reports whether the email in the path belongs to an admin.
// A missing record is simply not an admin.
func (c *UserController) AdminCheck(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := c.store.FindByEmail(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("admin check failed", "email", email, "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"admin": user.IsAdmin()})
}

// Remove deletes a user by identifier and echoes the delete acknowledgment.
func (c *UserController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	res, err := c.store.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("user delete failed", "id", id.Hex(), "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, models.NewDeleteResult(res))
}

// MakeAdmin promotes a user to the admin role. Applying it twice leaves the
// same end state (matched 1, modified 0 the second time).
func (c *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	res, err := c.store.MakeAdmin(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("make admin failed", "id", id.Hex(), "error", err)
		response.InternalError(w)
		return
	}

	response.JSON(w, http.StatusOK, models.NewUpdateResult(res))
}
