// Package orm is a thin chainable wrapper over gorm, scoped to the
// operations the bakery repositories need: point lookups, existence
// checks, inserts, field-level updates, and transactions.
package orm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/goldencrust/bakery/pkg/database"
)

// Cacher lets read queries be served from the cache layer. Wired at boot
// so orm and cache never import each other.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
}

// CacheStore is the cache bridge installed by the server bootstrap.
var CacheStore Cacher

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

// WithDB wraps an explicit gorm handle (a transaction, or a test database).
func WithDB(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Or(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Or(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Exists reports whether the current query matches at least one row.
func (q *Query) Exists() (bool, error) {
	n, err := q.Count()
	return n > 0, err
}

func (q *Query) Create(value interface{}) error {
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	return q.db.Save(value).Error
}

// Updates applies a column map to every row matched by the query.
// Zero values in the map are written as-is (gorm map semantics), which
// is what field-level overwrites rely on.
func (q *Query) Updates(values map[string]interface{}) error {
	return q.db.Updates(values).Error
}

// Transaction runs fn inside a database transaction. Any error returned
// by fn rolls the whole transaction back.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}

// Cache serves the query from CacheStore when possible, falling back to
// the database and populating the cache on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	if CacheStore != nil {
		CacheStore.Set(key, dest, ttl)
	}
	return nil
}

// IsNotFound reports whether err is gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ── Pagination ───────────────────────────────────────────────────────────────

// Pagination describes one page of a paginated result set.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// GetWithPagination fills dest with one page of results and returns the
// pagination metadata.
func (q *Query) GetWithPagination(dest interface{}, page, perPage int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	total, err := q.Count()
	if err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * perPage
	if err := q.db.Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}, nil
}
