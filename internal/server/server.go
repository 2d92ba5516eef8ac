// Package server boots the storefront: configuration, database, cache,
// storage, the middleware stack, and the HTTP listener.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goldencrust/bakery/app/routes"
	"github.com/goldencrust/bakery/config"
	"github.com/goldencrust/bakery/pkg/cache"
	"github.com/goldencrust/bakery/pkg/database"
	"github.com/goldencrust/bakery/pkg/logger"
	"github.com/goldencrust/bakery/pkg/metrics"
	"github.com/goldencrust/bakery/pkg/middleware"
	"github.com/goldencrust/bakery/pkg/orm"
	"github.com/goldencrust/bakery/pkg/reqid"
	"github.com/goldencrust/bakery/pkg/router"
	"github.com/goldencrust/bakery/pkg/session"
	"github.com/goldencrust/bakery/pkg/storage"
)

// Start boots every subsystem and blocks serving HTTP.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Redis is optional: sessions and the catalog cache fall back to the
	// in-process store when it is unreachable.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache: redis unavailable, using in-process store", "error", err)
	}

	storage.Connect()
	logger.ConnectMongo()

	handler := Handler()

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Golden Crust storefront running on %s\n", addr)
	logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
	return srv.ListenAndServe()
}

// Handler builds the full middleware stack and route table. Split out of
// Start so tests can serve the exact production handler via httptest.
func Handler() http.Handler {
	// Wire the cache into the ORM (keeps orm and cache decoupled).
	orm.CacheStore = &ormCache{}

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — load/create session cookie
	//  6. CORS              — set CORS headers
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	// Prometheus scrape endpoint — outside the named route table.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterWeb(r)
	routes.RegisterAPI(r)

	return r.Handler()
}

// ormCache bridges pkg/cache to the orm.Cacher interface.
type ormCache struct{}

func (c *ormCache) Get(key string, dest interface{}) bool {
	return cache.Get(key, dest)
}

func (c *ormCache) Set(key string, value interface{}, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}
