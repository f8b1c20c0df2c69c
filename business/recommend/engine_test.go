package recommend

import (
	"math"
	"reflect"
	"testing"

	"myShopRecs/domain"
)

// catalog with the query item Q plus candidates X and Y: X is similar but
// unpopular, Y dissimilar but popular.
func blendSnapshot() *domain.ModelSnapshot {
	return &domain.ModelSnapshot{
		Version: domain.SnapshotVersion,
		Dim:     3,
		Items: []domain.Item{
			{ProductID: "Q", ProductName: "query item", Brand: "acme", Category: "shoes"},
			{ProductID: "X", ProductName: "similar item", Brand: "other", Category: "bags"},
			{ProductID: "Y", ProductName: "popular item", Brand: "zenith", Category: "hats"},
		},
		Vectors: [][]float64{
			{1, 0, 0},
			{0.8, 0.6, 0},
			{0.1, 0, math.Sqrt(1 - 0.01)},
		},
		Popularity: map[string]float64{"Q": 0, "X": 0.1, "Y": 0.9},
	}
}

func coldStartSnapshot() *domain.ModelSnapshot {
	return &domain.ModelSnapshot{
		Version: domain.SnapshotVersion,
		Dim:     1,
		Items: []domain.Item{
			{ProductID: "A"},
			{ProductID: "B"},
			{ProductID: "C"},
		},
		Vectors:    [][]float64{{1}, {1}, {1}},
		Popularity: map[string]float64{"A": 0.9, "B": 0.2, "C": 0.9},
	}
}

// query plus nine candidates that all tie at score zero, so the ordering is
// purely the id tie-break.
func tieSnapshot() *domain.ModelSnapshot {
	items := []domain.Item{{ProductID: "Q"}}
	vectors := [][]float64{{1, 0}}
	popularity := map[string]float64{"Q": 0}
	ids := []string{"C01", "C02", "C03", "C04", "C05", "C06", "C07", "C08", "C09"}
	for _, id := range ids {
		items = append(items, domain.Item{ProductID: id})
		vectors = append(vectors, []float64{0, 1})
		popularity[id] = 0
	}
	return &domain.ModelSnapshot{
		Version:    domain.SnapshotVersion,
		Dim:        2,
		Items:      items,
		Vectors:    vectors,
		Popularity: popularity,
	}
}

func mustEngine(t *testing.T, snap *domain.ModelSnapshot) *Engine {
	t.Helper()
	e, err := NewEngine(snap)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestRecommendBlendsSimilarityAndPopularity(t *testing.T) {
	e := mustEngine(t, blendSnapshot())

	items, total := e.Recommend(Request{ProductID: "Q", K: 10, Alpha: 0.6})

	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ProductID != "X" || items[1].ProductID != "Y" {
		t.Fatalf("order = [%s %s], want [X Y]", items[0].ProductID, items[1].ProductID)
	}
	if items[0].Score != 0.52 {
		t.Errorf("score(X) = %v, want 0.52", items[0].Score)
	}
	if items[1].Score != 0.42 {
		t.Errorf("score(Y) = %v, want 0.42", items[1].Score)
	}
}

func TestRecommendScoreBounds(t *testing.T) {
	e := mustEngine(t, blendSnapshot())

	for _, alpha := range []float64{0, 0.3, 0.6, 1} {
		items, _ := e.Recommend(Request{ProductID: "Q", K: 10, Alpha: alpha})
		for _, it := range items {
			if it.Score < 0 || it.Score > 1 {
				t.Errorf("alpha=%v: score %v for %s out of [0,1]", alpha, it.Score, it.ProductID)
			}
		}
	}
}

func TestRecommendClampsAlpha(t *testing.T) {
	e := mustEngine(t, blendSnapshot())

	over, _ := e.Recommend(Request{ProductID: "Q", K: 10, Alpha: 5})
	pure, _ := e.Recommend(Request{ProductID: "Q", K: 10, Alpha: 1})
	if !reflect.DeepEqual(over, pure) {
		t.Errorf("alpha above 1 should behave like alpha=1")
	}
}

func TestColdStartRanksWholeCatalogByPopularity(t *testing.T) {
	e := mustEngine(t, coldStartSnapshot())

	items, total := e.Recommend(Request{ProductID: "UNKNOWN", K: 2, Alpha: 0.6})

	if total != 3 {
		t.Fatalf("total = %d, want full catalog size 3", total)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	// A and C tie at 0.9; id ascending puts A first
	if items[0].ProductID != "A" || items[1].ProductID != "C" {
		t.Fatalf("order = [%s %s], want [A C]", items[0].ProductID, items[1].ProductID)
	}
	for _, it := range items {
		if it.Score != 0.9 {
			t.Errorf("score(%s) = %v, want 0.9", it.ProductID, it.Score)
		}
		if it.Reason != "popular fallback" {
			t.Errorf("reason(%s) = %q, want \"popular fallback\"", it.ProductID, it.Reason)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	e := mustEngine(t, tieSnapshot())

	req := Request{ProductID: "Q", K: 5, Alpha: 0.6, Offset: 2, Seed: 7}
	first, totalFirst := e.Recommend(req)
	second, totalSecond := e.Recommend(req)

	if totalFirst != totalSecond || !reflect.DeepEqual(first, second) {
		t.Errorf("identical requests produced different results")
	}
}

func TestSeedDoesNotInfluenceOrdering(t *testing.T) {
	e := mustEngine(t, tieSnapshot())

	a, _ := e.Recommend(Request{ProductID: "Q", K: 9, Alpha: 0.6, Seed: 0})
	b, _ := e.Recommend(Request{ProductID: "Q", K: 9, Alpha: 0.6, Seed: 12345})

	if !reflect.DeepEqual(a, b) {
		t.Errorf("seed changed the ordering; it must be a carried no-op")
	}
}

func TestPaginationCoversOrderingWithoutGapsOrDuplicates(t *testing.T) {
	e := mustEngine(t, tieSnapshot())

	full, total := e.Recommend(Request{ProductID: "Q", K: 100, Alpha: 0.6})
	if total != 9 {
		t.Fatalf("total = %d, want 9", total)
	}

	var pages []domain.RankedItem
	k := 2
	for offset := 0; offset < total; offset += k {
		page, pageTotal := e.Recommend(Request{ProductID: "Q", K: k, Alpha: 0.6, Offset: offset})
		if pageTotal != total {
			t.Fatalf("offset %d: total %d, want %d", offset, pageTotal, total)
		}
		if len(page) > k {
			t.Fatalf("offset %d: page longer than k", offset)
		}
		pages = append(pages, page...)
	}

	if !reflect.DeepEqual(pages, full) {
		t.Errorf("concatenated pages differ from the full ordering")
	}

	seen := make(map[string]struct{})
	for _, it := range pages {
		if _, dup := seen[it.ProductID]; dup {
			t.Errorf("duplicate entry %s across pages", it.ProductID)
		}
		seen[it.ProductID] = struct{}{}
	}
}

func TestOffsetPastEndYieldsEmptyPage(t *testing.T) {
	e := mustEngine(t, blendSnapshot())

	items, total := e.Recommend(Request{ProductID: "Q", K: 5, Alpha: 0.6, Offset: 50})
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want empty page", len(items))
	}
}

func TestTieBreakIsIdAscending(t *testing.T) {
	e := mustEngine(t, tieSnapshot())

	items, _ := e.Recommend(Request{ProductID: "Q", K: 9, Alpha: 0.6})
	want := []string{"C01", "C02", "C03", "C04", "C05", "C06", "C07", "C08", "C09"}
	for i, it := range items {
		if it.ProductID != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, it.ProductID, want[i])
		}
	}
}

func TestNewEngineRejectsBadSnapshots(t *testing.T) {
	if _, err := NewEngine(nil); err == nil {
		t.Error("nil snapshot accepted")
	}
	if _, err := NewEngine(&domain.ModelSnapshot{}); err == nil {
		t.Error("empty snapshot accepted")
	}

	dup := coldStartSnapshot()
	dup.Items[1].ProductID = "A"
	if _, err := NewEngine(dup); err == nil {
		t.Error("duplicate product id accepted")
	}

	reserved := coldStartSnapshot()
	reserved.Items[0].ProductID = "A|1"
	if _, err := NewEngine(reserved); err == nil {
		t.Error("product id containing the cursor delimiter accepted")
	}
}
