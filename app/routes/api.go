package routes

import (
	"net/http"

	"bistro-boss-server/app/controllers"
	"bistro-boss-server/pkg/auth"
	"bistro-boss-server/pkg/middleware"
	"bistro-boss-server/pkg/rbac"
	"bistro-boss-server/pkg/router"
)

// Deps carries everything the route handlers need. Stores are interfaces so
// route-level tests can run against in-memory doubles.
type Deps struct {
	Tokens  *auth.Service
	Users   controllers.UserStore
	Roles   rbac.RoleFinder
	Carts   controllers.CartStore
	Menu    controllers.MenuStore
	Reviews controllers.ReviewStore
}

// RegisterAPI mounts the full route table. Gating is deliberately
// per-endpoint, not per-prefix: registration and token issuance stay open,
// the user-management routes require a valid token AND a stored admin role,
// and the cart routes are ungated (the email query parameter is the only
// scoping, see CartController).
func RegisterAPI(r *router.Router, d Deps) {
	authCtl := controllers.NewAuthController(d.Tokens)
	userCtl := controllers.NewUserController(d.Users)
	cartCtl := controllers.NewCartController(d.Carts)
	menuCtl := controllers.NewMenuController(d.Menu)
	reviewCtl := controllers.NewReviewController(d.Reviews)

	r.Get("/", "liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Bistro Boss is running!")) //nolint:errcheck
	})

	adminOnly := []router.Middleware{
		middleware.RequireToken(d.Tokens),
		rbac.RequireAdmin(d.Roles),
	}

	api := r.Group("/api/v1")

	api.Post("/user/authToken", "auth.token", authCtl.IssueToken)
	api.Post("/user/userInfo", "users.register", userCtl.Register)
	api.Get("/user/userInfo", "users.list", userCtl.List, adminOnly...)
	api.Get("/admin/{email}", "users.adminCheck", userCtl.AdminCheck, adminOnly...)
	api.Delete("/admin/removeUser/{id}", "users.remove", userCtl.Remove, adminOnly...)
	api.Patch("/makeAdmin/{id}", "users.makeAdmin", userCtl.MakeAdmin, adminOnly...)

	api.Get("/menu_item", "menu.list", menuCtl.List)
	api.Get("/client_review", "reviews.list", reviewCtl.List)

	api.Post("/user/addToCart", "carts.add", cartCtl.Add)
	api.Get("/user/get_carts_data", "carts.list", cartCtl.List)
	api.Delete("/user/deleteCart/{id}", "carts.remove", cartCtl.Remove)
}
