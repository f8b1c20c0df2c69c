package recommend

import (
	"fmt"
	"strings"

	"myShopRecs/domain"
)

// Engine serves ranked similar-item pages from an immutable fitted snapshot.
// All state is built once in NewEngine and only ever read afterwards, so any
// number of requests may score concurrently without locking.
type Engine struct {
	snap    *domain.ModelSnapshot
	idToIdx map[string]int
}

func NewEngine(snap *domain.ModelSnapshot) (*Engine, error) {
	if snap == nil || len(snap.Items) == 0 {
		return nil, fmt.Errorf("empty model snapshot")
	}

	idToIdx := make(map[string]int, len(snap.Items))
	for i, it := range snap.Items {
		if strings.Contains(it.ProductID, cursorDelimiter) {
			return nil, fmt.Errorf("product id %q contains reserved cursor delimiter", it.ProductID)
		}
		if _, dup := idToIdx[it.ProductID]; dup {
			return nil, fmt.Errorf("duplicate product id %q in snapshot", it.ProductID)
		}
		idToIdx[it.ProductID] = i
	}

	return &Engine{snap: snap, idToIdx: idToIdx}, nil
}

// Request is a fully resolved recommendation query: the cursor has already
// been decoded into Offset and Seed. Diversify is accepted for forward
// compatibility but currently has no effect on ordering.
type Request struct {
	ProductID string
	K         int
	Alpha     float64
	Offset    int
	Seed      int
	Diversify bool
}

func (e *Engine) CatalogSize() int {
	return len(e.snap.Items)
}

func (e *Engine) HasItem(productID string) bool {
	_, ok := e.idToIdx[productID]
	return ok
}

func (e *Engine) ItemByID(productID string) (domain.Item, bool) {
	idx, ok := e.idToIdx[productID]
	if !ok {
		return domain.Item{}, false
	}
	return e.snap.Items[idx], true
}

// Items exposes the catalog in snapshot order for read-only use (search).
func (e *Engine) Items() []domain.Item {
	return e.snap.Items
}

// Recommend produces one page of ranked entries plus the total size of the
// full ordering. An unknown product id is not an error: the whole catalog is
// ranked by popularity alone (cold start).
func (e *Engine) Recommend(req Request) ([]domain.RankedItem, int) {
	if req.Alpha < 0 {
		req.Alpha = 0
	} else if req.Alpha > 1 {
		req.Alpha = 1
	}
	if req.K < 1 {
		req.K = 1
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	queryIdx, known := e.idToIdx[req.ProductID]
	if !known {
		pagesServedTotal.WithLabelValues(modeFallback).Inc()
		return e.popularFallback(req.Offset, req.K, req.Seed), e.CatalogSize()
	}

	cands := e.scoreCandidates(queryIdx, req.Alpha)
	rankCandidates(cands, req.Seed)

	query := e.snap.Items[queryIdx]
	lo, hi := pageBounds(len(cands), req.Offset, req.K)

	items := make([]domain.RankedItem, 0, hi-lo)
	for _, c := range cands[lo:hi] {
		items = append(items, domain.RankedItem{
			ProductID: c.productID,
			Score:     roundScore(c.combined),
			Reason:    buildReason(c.similarity, c.popularity, query, e.snap.Items[c.idx]),
		})
	}

	pagesServedTotal.WithLabelValues(modeContent).Inc()
	return items, len(cands)
}

// popularFallback ranks the entire catalog by popularity descending, product
// id ascending. Same pagination rules, fixed reason label.
func (e *Engine) popularFallback(offset, k, seed int) []domain.RankedItem {
	cands := make([]candidateScore, 0, len(e.snap.Items))
	for i, it := range e.snap.Items {
		pop := e.snap.Popularity[it.ProductID]
		cands = append(cands, candidateScore{
			productID:  it.ProductID,
			idx:        i,
			popularity: pop,
			combined:   pop,
		})
	}
	rankCandidates(cands, seed)

	lo, hi := pageBounds(len(cands), offset, k)

	items := make([]domain.RankedItem, 0, hi-lo)
	for _, c := range cands[lo:hi] {
		items = append(items, domain.RankedItem{
			ProductID: c.productID,
			Score:     roundScore(c.popularity),
			Reason:    reasonPopularFallback,
		})
	}
	return items
}
