// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
)

const PageSize = 10

// PageFromRequest reads the 1-based "page" query parameter. A missing or
// non-numeric value means the first page; range checks happen in Paginate.
// Integers that overflow int saturate so they still fail or miss there.
func PageFromRequest(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return 0
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the items belonging to page. Pages below 1 are rejected;
// a page past the end yields an empty, non-nil slice.
func Paginate[T any](page int, items []T) ([]T, error) {
	if page < 1 {
		return nil, fmt.Errorf("page %d: %w", page, apperr.ErrUnprocessable)
	}

	pages := (len(items) + PageSize - 1) / PageSize
	if page > pages {
		return []T{}, nil
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))
	return items[start:end], nil
}
