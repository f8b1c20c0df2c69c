package recommend

import (
	"fmt"

	"myShopRecs/business/vectorizer"
	"myShopRecs/domain"
)

// Fit builds the serving snapshot from the raw catalog and interaction log.
// Purchases weigh twice as much as views; scores are normalized so the most
// interacted-with item gets exactly 1.0. Every catalog item ends up with an
// entry, zero when it never appears in the log.
func Fit(items []domain.Item, interactions []domain.Interaction, v *vectorizer.ProductVectorizer) (*domain.ModelSnapshot, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("cannot fit on an empty catalog")
	}

	vectors, err := v.FitTransform(items)
	if err != nil {
		return nil, fmt.Errorf("vectorize catalog: %w", err)
	}

	raw := make(map[string]float64)
	for _, in := range interactions {
		switch in.Event {
		case domain.EventPurchase:
			raw[in.ProductID] += 2
		case domain.EventView:
			raw[in.ProductID] += 1
		}
	}

	// normalize against the catalog maximum; interaction rows for retired
	// products must not depress in-catalog scores
	max := 0.0
	for _, it := range items {
		if s := raw[it.ProductID]; s > max {
			max = s
		}
	}

	popularity := make(map[string]float64, len(items))
	for _, it := range items {
		if max > 0 {
			popularity[it.ProductID] = raw[it.ProductID] / max
		} else {
			popularity[it.ProductID] = 0
		}
	}

	return &domain.ModelSnapshot{
		Version:    domain.SnapshotVersion,
		Dim:        v.Dim(),
		Items:      items,
		Vectors:    vectors,
		Popularity: popularity,
	}, nil
}
