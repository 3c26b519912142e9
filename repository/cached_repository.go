package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/camden-git/totenbilder/models"
)

var (
	lookupCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "totenbilder_lookup_cache_hits_total",
		Help: "Single-record lookups answered from the in-process cache.",
	})
	lookupCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "totenbilder_lookup_cache_misses_total",
		Help: "Single-record lookups that went to the underlying repository.",
	})
)

// CachedTotenbildRepository keeps recently viewed person pages in an
// expiring LRU. Listings are always passed through.
type CachedTotenbildRepository struct {
	TotenbildRepository
	cache *expirable.LRU[string, models.Totenbild]
}

// NewCachedTotenbildRepository wraps next. Records change only out-of-band,
// so ttl bounds how long such a change stays invisible.
func NewCachedTotenbildRepository(next TotenbildRepository, size int, ttl time.Duration) *CachedTotenbildRepository {
	return &CachedTotenbildRepository{
		TotenbildRepository: next,
		cache:               expirable.NewLRU[string, models.Totenbild](size, nil, ttl),
	}
}

func (c *CachedTotenbildRepository) GetByID(ctx context.Context, nid int64) (*models.Totenbild, error) {
	return c.lookup("nid:"+strconv.FormatInt(nid, 10), func() (*models.Totenbild, error) {
		return c.TotenbildRepository.GetByID(ctx, nid)
	})
}

func (c *CachedTotenbildRepository) GetByAlias(ctx context.Context, alias string) (*models.Totenbild, error) {
	return c.lookup("alias:"+alias, func() (*models.Totenbild, error) {
		return c.TotenbildRepository.GetByAlias(ctx, alias)
	})
}

// lookup caches successful results only; errors and misses are retried next time.
func (c *CachedTotenbildRepository) lookup(key string, load func() (*models.Totenbild, error)) (*models.Totenbild, error) {
	if rec, ok := c.cache.Get(key); ok {
		lookupCacheHits.Inc()
		clone := rec.Clone()
		return &clone, nil
	}
	lookupCacheMisses.Inc()

	rec, err := load()
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, rec.Clone())
	return rec, nil
}

// Purge drops every cached record.
func (c *CachedTotenbildRepository) Purge() {
	c.cache.Purge()
}
