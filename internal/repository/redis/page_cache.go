package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"myShopRecs/domain"

	"github.com/redis/go-redis/v9"
)

// PageCacheRepository stores assembled recommendation pages in Redis with a
// TTL. The snapshot is immutable for the process lifetime, so cached pages
// can never go stale within it; the TTL only bounds memory after retraining.
type PageCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCacheRepository(client *redis.Client, ttl time.Duration) *PageCacheRepository {
	return &PageCacheRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *PageCacheRepository) Get(ctx context.Context, key string) (*domain.RecommendationPage, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get page from Redis: %w", err)
	}

	var page domain.RecommendationPage
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached page %s: %w", key, err)
	}

	return &page, true, nil
}

func (r *PageCacheRepository) Set(ctx context.Context, key string, page *domain.RecommendationPage) error {
	val, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}

	if err := r.client.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set page in Redis: %w", err)
	}

	return nil
}
