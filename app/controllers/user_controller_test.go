package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro-boss-server/app/controllers"
	"bistro-boss-server/app/models"
	"bistro-boss-server/pkg/router"
	"bistro-boss-server/pkg/testkit"
)

// fakeUserStore mimics the usersInfo collection, including the unique email
// index: a second insert with the same email fails with a duplicate-key
// write error, exactly like the real index.
type fakeUserStore struct {
	docs []bson.M
}

func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
}

func (f *fakeUserStore) Insert(_ context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	email, _ := doc["email"].(string)
	for _, d := range f.docs {
		if d["email"] == email {
			return nil, duplicateKeyErr()
		}
	}

	id := primitive.NewObjectID()
	stored := bson.M{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs = append(f.docs, stored)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (f *fakeUserStore) All(context.Context) ([]bson.M, error) {
	return f.docs, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, d := range f.docs {
		if d["email"] == email {
			user := &models.User{Email: email}
			if id, ok := d["_id"].(primitive.ObjectID); ok {
				user.ID = id
			}
			if role, ok := d["role"].(string); ok {
				user.Role = role
			}
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := f.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return "", err
	}
	return user.Role, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i, d := range f.docs {
		if d["_id"] == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

func (f *fakeUserStore) MakeAdmin(_ context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	for _, d := range f.docs {
		if d["_id"] == id {
			res := &mongo.UpdateResult{MatchedCount: 1}
			if d["role"] != "admin" {
				d["role"] = "admin"
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

// userRouter mounts the user controller on the real route patterns so path
// parameters resolve the way they do in production.
func userRouter(store controllers.UserStore) http.Handler {
	ctl := controllers.NewUserController(store)
	r := router.New()
	r.Post("/user/userInfo", "", ctl.Register)
	r.Get("/user/userInfo", "", ctl.List)
	r.Get("/admin/{email}", "", ctl.AdminCheck)
	r.Delete("/admin/removeUser/{id}", "", ctl.Remove)
	r.Patch("/makeAdmin/{id}", "", ctl.MakeAdmin)
	return r.Handler()
}

func TestRegisterThenDuplicate(t *testing.T) {
	h := userRouter(&fakeUserStore{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPost, "/user/userInfo", `{"email":"a@x.com","name":"A"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var first models.InsertResult
	testkit.DecodeJSON(t, rec, &first)
	assert.True(t, first.Acknowledged)
	assert.NotNil(t, first.InsertedID, "first registration must return an insertedId")

	// Same payload again: 200 with the duplicate message and a null id.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPost, "/user/userInfo", `{"email":"a@x.com","name":"A"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONEq(t, `{"message":"user already exist","insertedId":null}`, rec)
}

func TestRegisterBadJSON(t *testing.T) {
	h := userRouter(&fakeUserStore{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPost, "/user/userInfo", `{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsers(t *testing.T) {
	store := &fakeUserStore{}
	h := userRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodGet, "/user/userInfo", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONEq(t, `[]`, rec) // empty store serialises as [], not null

	h.ServeHTTP(httptest.NewRecorder(), testkit.Request(t, http.MethodPost, "/user/userInfo", `{"email":"a@x.com"}`))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodGet, "/user/userInfo", ""))
	var users []map[string]any
	testkit.DecodeJSON(t, rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.com", users[0]["email"])
}

func TestMakeAdminIdempotentAndAdminCheck(t *testing.T) {
	store := &fakeUserStore{}
	h := userRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPost, "/user/userInfo", `{"email":"a@x.com","role":"user"}`))
	var created models.InsertResult
	testkit.DecodeJSON(t, rec, &created)
	id, ok := created.InsertedID.(string)
	require.True(t, ok)

	// Not an admin yet.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodGet, "/admin/a@x.com", ""))
	testkit.AssertJSONEq(t, `{"admin":false}`, rec)

	// Promote.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPatch, "/makeAdmin/"+id, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.UpdateResult
	testkit.DecodeJSON(t, rec, &updated)
	assert.Equal(t, int64(1), updated.MatchedCount)
	assert.Equal(t, int64(1), updated.ModifiedCount)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodGet, "/admin/a@x.com", ""))
	testkit.AssertJSONEq(t, `{"admin":true}`, rec)

	// Promote again: same end state, nothing modified.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPatch, "/makeAdmin/"+id, ""))
	testkit.DecodeJSON(t, rec, &updated)
	assert.Equal(t, int64(1), updated.MatchedCount)
	assert.Equal(t, int64(0), updated.ModifiedCount)
}

func TestAdminCheckUnknownEmail(t *testing.T) {
	h := userRouter(&fakeUserStore{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodGet, "/admin/nobody@x.com", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONEq(t, `{"admin":false}`, rec)
}

func TestRemoveUser(t *testing.T) {
	store := &fakeUserStore{}
	h := userRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodPost, "/user/userInfo", `{"email":"a@x.com"}`))
	var created models.InsertResult
	testkit.DecodeJSON(t, rec, &created)
	id := created.InsertedID.(string)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodDelete, "/admin/removeUser/"+id, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec)
	assert.Empty(t, store.docs)
}

func TestRemoveUserInvalidID(t *testing.T) {
	h := userRouter(&fakeUserStore{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, testkit.Request(t, http.MethodDelete, "/admin/removeUser/not-an-oid", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
