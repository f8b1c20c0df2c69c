package recommend

import (
	"strings"

	"myShopRecs/domain"
)

const reasonPopularFallback = "popular fallback"

// buildReason evaluates the explanation predicates in fixed priority order
// and joins every label that fires. Pure; knows nothing about ranking or
// pagination.
func buildReason(contentSim, popularity float64, query, candidate domain.Item) string {
	var reasons []string

	if contentSim >= 0.6 {
		reasons = append(reasons, "strong content match")
	} else if contentSim >= 0.3 {
		reasons = append(reasons, "moderate text similarity")
	}

	if query.Brand == candidate.Brand {
		reasons = append(reasons, "same brand")
	}

	if query.Category == candidate.Category {
		reasons = append(reasons, "same category")
	}

	if popularity >= 0.7 {
		reasons = append(reasons, "popular item")
	} else if popularity >= 0.4 {
		reasons = append(reasons, "moderate popularity")
	}

	if len(reasons) == 0 {
		if contentSim > 0 {
			return "low content similarity"
		}
		return reasonPopularFallback
	}

	return strings.Join(reasons, " & ")
}
