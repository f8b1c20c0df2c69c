package recommend

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// cursorDelimiter separates the three cursor fields. Product ids never
// contain it; catalog load rejects ids that do.
const cursorDelimiter = "|"

// EncodeCursor packs pagination state into an opaque URL-safe token. The
// seed is carried for cursor identity only; ranking never consults it.
func EncodeCursor(productID string, offset, seed int) string {
	raw := productID + cursorDelimiter + strconv.Itoa(offset) + cursorDelimiter + strconv.Itoa(seed)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor is the exact inverse of EncodeCursor. Any malformed token
// yields ErrInvalidCursor: bad base64, wrong field count, non-integer
// offset/seed, or a negative offset.
func DecodeCursor(token string) (productID string, offset int, seed int, err error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: not base64", ErrInvalidCursor)
	}

	parts := strings.Split(string(raw), cursorDelimiter)
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("%w: wrong field count", ErrInvalidCursor)
	}

	offset, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: offset is not an integer", ErrInvalidCursor)
	}
	if offset < 0 {
		return "", 0, 0, fmt.Errorf("%w: negative offset", ErrInvalidCursor)
	}

	seed, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: seed is not an integer", ErrInvalidCursor)
	}

	return parts[0], offset, seed, nil
}
