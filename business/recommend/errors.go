package recommend

import "errors"

var (
	// ErrInvalidCursor covers malformed tokens and cursors issued for a
	// different product than the current request.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrUnknownProduct is the transport-level "not found" for the single
	// item lookup. The engine itself never fails on an unknown id; it
	// serves the popularity fallback instead.
	ErrUnknownProduct = errors.New("product_id not found")
)
