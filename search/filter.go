// Package search implements the product discovery pipeline: it compiles a
// sparse client-supplied FilterSpec into a store-agnostic predicate tree,
// resolves a sort order and page window, and executes the paginated find plus
// total count concurrently against the product collection.
package search

// FilterSpec is the full set of optional discovery criteria a client may
// send. An absent field means "no constraint". Numeric fields are pointers so
// a supplied zero is a real bound rather than an unset one; boolean fields
// only constrain when true; string fields only constrain when non-empty.
type FilterSpec struct {
	Category        string
	ShopID          string
	PriceRange      PriceRange
	Shipping        Shipping
	SellerLocation  string
	SellerRating    SellerRating
	CustomerReviews CustomerReviews
	DeliveryTime    DeliveryTime
	Brand           string
	Attributes      map[string]string
	NewArrivals     bool
	HotDeals        bool
	Promoted        bool
	Discounted      bool
	DiscountType    string
	Coupons         bool
	Time            string
	SearchQuery     string
	Sort            string
	Page            string
}

// PriceRange is an inclusive price window; either side may be open.
type PriceRange struct {
	Min *float64
	Max *float64
}

type Shipping struct {
	FreeShipping   bool
	FastShipping   bool
	ShipsToCountry string
}

type SellerRating struct {
	TopRated         bool
	PositiveFeedback *int
}

type CustomerReviews struct {
	StarRating *float64
}

type DeliveryTime struct {
	Ships7Days  bool
	Ships30Days bool
}
