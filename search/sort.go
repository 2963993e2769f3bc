package search

// SortField is one (field, direction) pair of a sort specification.
type SortField struct {
	Field string
	Desc  bool
}

// SortSpec is an ordered list of sort fields. Empty means the store's
// natural order.
type SortSpec []SortField

// Sort modes accepted by the discovery endpoint.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortPopular   = "popular"
	SortRating    = "rating"
)

// ResolveSort maps a sort mode to its SortSpec. Unknown or empty modes
// degrade to the empty spec rather than failing.
func ResolveSort(mode string) SortSpec {
	switch mode {
	case SortPriceAsc:
		return SortSpec{{Field: "price"}}
	case SortPriceDesc:
		return SortSpec{{Field: "price", Desc: true}}
	case SortNewest:
		return SortSpec{{Field: "createdAt", Desc: true}}
	case SortPopular:
		return SortSpec{{Field: "views", Desc: true}}
	case SortRating:
		return SortSpec{{Field: "stars", Desc: true}}
	default:
		return nil
	}
}
