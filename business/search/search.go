package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"myShopRecs/business/recommend"
	"myShopRecs/domain"
)

// ErrNoMatch is returned by SearchAndRecommend when no catalog row matches
// the query text.
var ErrNoMatch = errors.New("no match found")

// Service does plain substring search over the in-memory catalog. This is
// deliberately not part of the ranking core: no scoring, first match wins.
type Service struct {
	engine *recommend.Engine
	reco   *recommend.Service
}

func NewService(engine *recommend.Engine, reco *recommend.Service) *Service {
	return &Service{
		engine: engine,
		reco:   reco,
	}
}

// Search returns up to k catalog rows whose name, brand, category or
// description contains the query, case-insensitively. No match is an empty
// list, never an error.
func (s *Service) Search(ctx context.Context, query string, k int) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if k <= 0 {
		k = 10
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []domain.Item{}, nil
	}

	matches := make([]domain.Item, 0, k)
	for _, it := range s.engine.Items() {
		if matchesItem(it, needle) {
			matches = append(matches, it)
			if len(matches) == k {
				break
			}
		}
	}
	return matches, nil
}

// SearchAndRecommend resolves the first text match and returns it together
// with its first recommendation page.
func (s *Service) SearchAndRecommend(ctx context.Context, query string, k int, alpha float64) (*domain.Item, *domain.RecommendationPage, error) {
	matches, err := s.Search(ctx, query, 1)
	if err != nil {
		return nil, nil, err
	}
	if len(matches) == 0 {
		return nil, nil, ErrNoMatch
	}

	match := matches[0]
	page, err := s.reco.GetRecommendations(ctx, recommend.Query{
		ProductID: match.ProductID,
		K:         k,
		Alpha:     alpha,
	})
	if err != nil {
		return nil, nil, err
	}

	return &match, page, nil
}

func matchesItem(it domain.Item, needle string) bool {
	return strings.Contains(strings.ToLower(it.ProductName), needle) ||
		strings.Contains(strings.ToLower(it.Brand), needle) ||
		strings.Contains(strings.ToLower(it.Category), needle) ||
		strings.Contains(strings.ToLower(it.Description), needle)
}
