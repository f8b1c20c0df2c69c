package domain

// RankedItem is one entry of a recommendation page. Score is rounded to
// 3 decimals for presentation; ordering upstream uses full precision.
type RankedItem struct {
	ProductID string  `json:"product_id"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

type RecommendationPage struct {
	ProductID      string       `json:"product_id"`
	ProductName    string       `json:"product_name"`
	Alpha          float64      `json:"alpha"`
	PageSize       int          `json:"page_size"`
	Offset         int          `json:"offset"`
	TotalAvailable int          `json:"total_available"`
	Items          []RankedItem `json:"items"`
	NextCursor     *string      `json:"next_cursor"`
}
