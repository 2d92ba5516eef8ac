package services_test

import (
	"testing"
	"time"

	"github.com/goldencrust/bakery/pkg/cache"
	"github.com/goldencrust/bakery/pkg/orm"
)

// testCacher routes the ORM cache through the test's memory store.
type testCacher struct{}

func (testCacher) Get(key string, dest interface{}) bool { return cache.Get(key, dest) }
func (testCacher) Set(key string, value interface{}, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}

func installORMCache(t *testing.T) {
	t.Helper()
	orm.CacheStore = testCacher{}
	t.Cleanup(func() { orm.CacheStore = nil })
}
