package search

import "strconv"

// PageSize is the fixed number of items per page. It is intentionally not
// client-configurable; if that ever changes it needs an enforced upper bound
// so a single request cannot ask for the whole collection.
const PageSize = 50

// PageWindow is the slice of matching results to return.
type PageWindow struct {
	Page  int
	Skip  int64
	Limit int64
}

// Paginate resolves a raw page parameter to a window. Anything that does not
// parse to a positive integer resolves to page 1, so Skip is never negative.
func Paginate(raw string) PageWindow {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		page = 1
	}
	return PageWindow{Page: page, Skip: int64(page-1) * PageSize, Limit: PageSize}
}
