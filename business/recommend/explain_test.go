package recommend

import (
	"testing"

	"myShopRecs/domain"
)

func TestBuildReason(t *testing.T) {
	base := domain.Item{ProductID: "Q", Brand: "acme", Category: "shoes"}
	otherBrand := domain.Item{ProductID: "C", Brand: "zenith", Category: "bags"}
	sameBrand := domain.Item{ProductID: "C", Brand: "acme", Category: "bags"}
	sameBoth := domain.Item{ProductID: "C", Brand: "acme", Category: "shoes"}

	cases := []struct {
		name      string
		sim, pop  float64
		candidate domain.Item
		want      string
	}{
		{"strong match only", 0.65, 0.1, otherBrand, "strong content match"},
		{"moderate text only", 0.35, 0.1, otherBrand, "moderate text similarity"},
		{"threshold boundary 0.6", 0.6, 0.0, otherBrand, "strong content match"},
		{"threshold boundary 0.3", 0.3, 0.0, otherBrand, "moderate text similarity"},
		{"below text threshold", 0.29, 0.0, otherBrand, "low content similarity"},
		{"same brand fires", 0.1, 0.1, sameBrand, "same brand"},
		{"popular item", 0.1, 0.75, otherBrand, "popular item"},
		{"moderate popularity", 0.1, 0.45, otherBrand, "moderate popularity"},
		{"popularity boundary 0.7", 0.1, 0.7, otherBrand, "popular item"},
		{"everything fires", 0.8, 0.9, sameBoth, "strong content match & same brand & same category & popular item"},
		{"no predicate no similarity", 0.0, 0.0, otherBrand, "popular fallback"},
		{"no predicate some similarity", 0.05, 0.0, otherBrand, "low content similarity"},
	}

	for _, tc := range cases {
		got := buildReason(tc.sim, tc.pop, base, tc.candidate)
		if got != tc.want {
			t.Errorf("%s: buildReason(%.2f, %.2f) = %q, want %q", tc.name, tc.sim, tc.pop, got, tc.want)
		}
	}
}

func TestBuildReasonJoinOrderIsFixed(t *testing.T) {
	query := domain.Item{ProductID: "Q", Brand: "acme", Category: "shoes"}
	candidate := domain.Item{ProductID: "C", Brand: "acme", Category: "shoes"}

	got := buildReason(0.4, 0.5, query, candidate)
	want := "moderate text similarity & same brand & same category & moderate popularity"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
