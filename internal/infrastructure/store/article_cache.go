package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nandomoreu/mercadillo/internal/domain/contract"
	"github.com/nandomoreu/mercadillo/internal/domain/entity"
)

const listingKey = "articles:listing"

// ArticleCacheStore caches the full article listing in Redis. The delete
// workflow invalidates it so the refreshed listing it returns is never stale.
type ArticleCacheStore struct {
	rdb        *redis.Client
	listingTTL time.Duration
}

var _ contract.IArticleCache = (*ArticleCacheStore)(nil)

func NewArticleCacheStore(rdb *redis.Client) *ArticleCacheStore {
	return &ArticleCacheStore{
		rdb:        rdb,
		listingTTL: 30 * time.Minute,
	}
}

func (c *ArticleCacheStore) GetListing(ctx context.Context) ([]entity.Article, bool, error) {
	b, err := c.rdb.Get(ctx, listingKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var articles []entity.Article
	if err := json.Unmarshal(b, &articles); err != nil {
		return nil, false, nil
	}
	return articles, true, nil
}

func (c *ArticleCacheStore) SetListing(ctx context.Context, articles []entity.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listingKey, data, c.listingTTL).Err()
}

func (c *ArticleCacheStore) InvalidateListing(ctx context.Context) error {
	return c.rdb.Del(ctx, listingKey).Err()
}
