package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/app/models"
	"bistro-boss-server/pkg/database"
	"bistro-boss-server/pkg/metrics"
)

// UserRepository handles usersInfo collection operations.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(database.UsersCollection)}
}

// Insert stores a registration document. The unique index on email makes
// this fail with a duplicate-key error instead of creating a second record;
// callers map that error to the duplicate-user response.
func (r *UserRepository) Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	defer metrics.ObserveDBOp(database.UsersCollection, "insert", time.Now())
	return r.col.InsertOne(ctx, doc)
}

// All returns every user document.
func (r *UserRepository) All(ctx context.Context) ([]bson.M, error) {
	defer metrics.ObserveDBOp(database.UsersCollection, "find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []bson.M
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail looks up a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer metrics.ObserveDBOp(database.UsersCollection, "find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleByEmail resolves the stored role for email; "" when no record exists.
// Satisfies rbac.RoleFinder.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// Delete removes a user by identifier.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	defer metrics.ObserveDBOp(database.UsersCollection, "delete", time.Now())
	return r.col.DeleteOne(ctx, bson.M{"_id": id})
}

// MakeAdmin unconditionally sets the user's role to "admin". Idempotent:
// a second apply matches the record but modifies nothing.
func (r *UserRepository) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	defer metrics.ObserveDBOp(database.UsersCollection, "update", time.Now())
	return r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": "admin"}})
}
