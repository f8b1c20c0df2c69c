package recommend

import (
	"context"
	"fmt"

	"myShopRecs/domain"
	"myShopRecs/pkg/logger"
	"myShopRecs/pkg/metrics"
)

// PageCache caches assembled recommendation pages. Implementations must
// treat a miss as (nil, false, nil).
type PageCache interface {
	Get(ctx context.Context, key string) (*domain.RecommendationPage, bool, error)
	Set(ctx context.Context, key string, page *domain.RecommendationPage) error
}

// Service implements the recommendations HTTP contract on top of the pure
// engine: cursor resolution and validation, the not-found rule for the
// lookup endpoint, page assembly, and an optional cache-aside page cache.
type Service struct {
	engine *Engine
	cache  PageCache
}

func NewService(engine *Engine, cache PageCache) *Service {
	return &Service{
		engine: engine,
		cache:  cache,
	}
}

// Query is the validated transport-level request. Cursor is still opaque
// here; the service owns decoding it.
type Query struct {
	ProductID string
	K         int
	Alpha     float64
	Cursor    string
	Diversify bool
}

func (s *Service) GetRecommendations(ctx context.Context, q Query) (*domain.RecommendationPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	offset, seed := 0, 0
	if q.Cursor != "" {
		cursorID, cursorOffset, cursorSeed, err := DecodeCursor(q.Cursor)
		if err != nil {
			return nil, err
		}
		// cursors are bound to the product they were issued for
		if cursorID != q.ProductID {
			return nil, fmt.Errorf("%w: product_id mismatch", ErrInvalidCursor)
		}
		offset, seed = cursorOffset, cursorSeed
	}

	query, known := s.engine.ItemByID(q.ProductID)
	if !known {
		return nil, ErrUnknownProduct
	}

	cacheKey := pageCacheKey(q, offset, seed)
	if s.cache != nil {
		page, found, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			logger.Error("page cache get failed", "key", cacheKey, "error", err)
		}
		if found {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return page, nil
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	items, total := s.engine.Recommend(Request{
		ProductID: q.ProductID,
		K:         q.K,
		Alpha:     q.Alpha,
		Offset:    offset,
		Seed:      seed,
		Diversify: q.Diversify,
	})

	page := &domain.RecommendationPage{
		ProductID:      q.ProductID,
		ProductName:    query.ProductName,
		Alpha:          roundScore(q.Alpha),
		PageSize:       q.K,
		Offset:         offset,
		TotalAvailable: total,
		Items:          items,
	}

	if offset+q.K < total {
		next := EncodeCursor(q.ProductID, offset+q.K, seed)
		page.NextCursor = &next
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, page); err != nil {
			logger.Error("page cache set failed", "key", cacheKey, "error", err)
		}
	}

	return page, nil
}

// pageCacheKey identifies a page by everything that affects its content.
// Diversify is deliberately excluded while it has no effect on ordering.
func pageCacheKey(q Query, offset, seed int) string {
	return fmt.Sprintf("reco:page:%s:k=%d:a=%.4f:o=%d:s=%d", q.ProductID, q.K, q.Alpha, offset, seed)
}
