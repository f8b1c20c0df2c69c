package recommend

import (
	"math"
	"testing"

	"myShopRecs/business/vectorizer"
	"myShopRecs/domain"
)

func fitCatalog() []domain.Item {
	return []domain.Item{
		{ProductID: "P1", ProductName: "espresso machine", Brand: "brewco", Category: "kitchen", Description: "compact espresso machine for home baristas"},
		{ProductID: "P2", ProductName: "drip coffee maker", Brand: "brewco", Category: "kitchen", Description: "programmable drip coffee maker with carafe"},
		{ProductID: "P3", ProductName: "electric kettle", Brand: "voltline", Category: "kitchen", Description: "fast boiling electric kettle"},
	}
}

func TestFitPopularityFormula(t *testing.T) {
	interactions := []domain.Interaction{
		{ProductID: "P1", Event: domain.EventPurchase},
		{ProductID: "P1", Event: domain.EventPurchase},
		{ProductID: "P1", Event: domain.EventView},
		{ProductID: "P2", Event: domain.EventView},
		{ProductID: "P2", Event: domain.EventView},
	}

	snap, err := Fit(fitCatalog(), interactions, vectorizer.New())
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// P1: 2*2 + 1 = 5 (max), P2: 2, P3: no interactions
	if got := snap.Popularity["P1"]; got != 1.0 {
		t.Errorf("popularity(P1) = %v, want 1.0", got)
	}
	if got := snap.Popularity["P2"]; math.Abs(got-0.4) > 1e-12 {
		t.Errorf("popularity(P2) = %v, want 0.4", got)
	}
	if got, ok := snap.Popularity["P3"]; !ok || got != 0 {
		t.Errorf("popularity(P3) = %v (present=%v), want backfilled 0", got, ok)
	}
}

func TestFitNoInteractionsAllZero(t *testing.T) {
	snap, err := Fit(fitCatalog(), nil, vectorizer.New())
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for id, pop := range snap.Popularity {
		if pop != 0 {
			t.Errorf("popularity(%s) = %v, want 0 with an empty log", id, pop)
		}
	}
}

func TestFitIgnoresOffCatalogInteractions(t *testing.T) {
	interactions := []domain.Interaction{
		{ProductID: "RETIRED", Event: domain.EventPurchase},
		{ProductID: "RETIRED", Event: domain.EventPurchase},
		{ProductID: "RETIRED", Event: domain.EventPurchase},
		{ProductID: "P1", Event: domain.EventView},
	}

	snap, err := Fit(fitCatalog(), interactions, vectorizer.New())
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	// P1 holds the catalog maximum, so it normalizes to exactly 1
	if got := snap.Popularity["P1"]; got != 1.0 {
		t.Errorf("popularity(P1) = %v, want 1.0", got)
	}
	if _, present := snap.Popularity["RETIRED"]; present {
		t.Errorf("off-catalog product leaked into the popularity map")
	}
}

func TestFitSnapshotShape(t *testing.T) {
	items := fitCatalog()
	snap, err := Fit(items, nil, vectorizer.New())
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if snap.Version != domain.SnapshotVersion {
		t.Errorf("version = %d", snap.Version)
	}
	if len(snap.Vectors) != len(items) {
		t.Fatalf("vectors = %d, want %d", len(snap.Vectors), len(items))
	}
	for i, vec := range snap.Vectors {
		if len(vec) != snap.Dim {
			t.Errorf("vector %d has dim %d, want %d", i, len(vec), snap.Dim)
		}
		var sum float64
		for _, x := range vec {
			sum += x * x
		}
		if math.Abs(math.Sqrt(sum)-1) > 1e-9 {
			t.Errorf("vector %d is not unit-norm (%v)", i, math.Sqrt(sum))
		}
	}
}

func TestFitEmptyCatalog(t *testing.T) {
	if _, err := Fit(nil, nil, vectorizer.New()); err == nil {
		t.Error("empty catalog must not fit")
	}
}
