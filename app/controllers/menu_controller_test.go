package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"bistro-boss-server/app/controllers"
	"bistro-boss-server/pkg/testkit"
)

type fakeListStore struct {
	docs []bson.M
	err  error
}

func (f *fakeListStore) All(context.Context) ([]bson.M, error) {
	return f.docs, f.err
}

func TestMenuList(t *testing.T) {
	store := &fakeListStore{docs: []bson.M{
		{"name": "Roast Duck Breast", "category": "salad", "price": 14.5},
		{"name": "Escalope de Veau", "category": "dessert", "price": 12.5},
	}}
	ctl := controllers.NewMenuController(store)

	rec := httptest.NewRecorder()
	ctl.List(rec, testkit.Request(t, http.MethodGet, "/menu", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	testkit.DecodeJSON(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "Roast Duck Breast", items[0]["name"])
}

func TestMenuListEmpty(t *testing.T) {
	ctl := controllers.NewMenuController(&fakeListStore{})

	rec := httptest.NewRecorder()
	ctl.List(rec, testkit.Request(t, http.MethodGet, "/menu", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONEq(t, `[]`, rec)
}

func TestMenuListStoreError(t *testing.T) {
	ctl := controllers.NewMenuController(&fakeListStore{err: errors.New("connection reset")})

	rec := httptest.NewRecorder()
	ctl.List(rec, testkit.Request(t, http.MethodGet, "/menu", ""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReviewList(t *testing.T) {
	store := &fakeListStore{docs: []bson.M{
		{"name": "Amanda", "rating": 5, "details": "Great food."},
	}}
	ctl := controllers.NewReviewController(store)

	rec := httptest.NewRecorder()
	ctl.List(rec, testkit.Request(t, http.MethodGet, "/reviews", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []map[string]any
	testkit.DecodeJSON(t, rec, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Amanda", reviews[0]["name"])
}
