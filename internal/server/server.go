package server

import (
	"context"
	"net/http"
	"time"

	"bistro-boss-server/app/repositories"
	"bistro-boss-server/app/routes"
	"bistro-boss-server/config"
	"bistro-boss-server/pkg/auth"
	"bistro-boss-server/pkg/cache"
	"bistro-boss-server/pkg/database"
	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/metrics"
	"bistro-boss-server/pkg/middleware"
	"bistro-boss-server/pkg/reqid"
	"bistro-boss-server/pkg/router"
)

// Start boots the whole service: config, MongoDB, Redis, the optional Mongo
// log sink, then the HTTP listener. Blocks until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := database.Connect(ctx, config.MongoURI(), config.MongoDB())
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	logger.Info("connected to MongoDB", "db", config.MongoDB())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	// Cache and log sink are best-effort: the API serves without them.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, serving uncached", "error", err)
	}
	if uri := config.LogMongoURI(); uri != "" {
		sink, err := logger.EnableMongoSink(uri, config.MongoDB(), "logs")
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer sink.Close()
		}
	}

	users := repositories.NewUserRepository(db)
	handler := buildHandler(routes.Deps{
		Tokens:  auth.NewService([]byte(config.AccessTokenSecret())),
		Users:   users,
		Roles:   users,
		Carts:   repositories.NewCartRepository(db),
		Menu:    repositories.NewMenuRepository(db),
		Reviews: repositories.NewReviewRepository(db),
	})

	addr := ":" + config.AppPort()
	logger.Info("Bistro Boss is running", "addr", addr)
	return http.ListenAndServe(addr, handler)
}

// buildHandler assembles the global middleware stack and the route table.
//
// Stack order, outermost first:
//  1. Prometheus metrics, outermost for accurate total latency
//  2. Recovery, catches panics before they kill the goroutine
//  3. Request ID, injected before anything logs
//  4. Logger, logs request_id from context
//  5. CORS headers
//  6. Rate limiter, rejects abusers early
func buildHandler(deps routes.Deps) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus endpoint. No auth, no versioned prefix.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, deps)

	return r.Handler()
}
