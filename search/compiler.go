package search

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Op is the comparison operator of an AND sub-predicate.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Condition is one independently satisfiable boolean sub-predicate, combined
// with all others by conjunction.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Range is an inclusive bound pair on a single field.
type Range struct {
	Min *float64
	Max *float64
}

// Query is the predicate tree compiled from a FilterSpec. It stays free of
// store operator syntax; translation to MongoDB happens in bson.go. In and
// Exists are separate components because membership and field-presence tests
// are not expressible as plain equality values.
type Query struct {
	Equality map[string]any
	Ranges   map[string]Range
	In       map[string][]string
	Exists   []string
	And      []Condition
	Search   string
}

// Discount types accepted by the discounted filter.
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFlat       = "FLAT"
)

// Time windows accepted by the time filter.
const (
	TimeThisWeek  = "this week"
	TimeThisMonth = "this month"
	TimeThisYear  = "this year"
	TimeAllTime   = "all time"
)

// Sellers at or above this average rating count as top rated.
const topRatedStars = 4.5

// Compile translates a FilterSpec into a Query. It is total: any subset of
// fields, including none, is valid and yields a valid (possibly universal)
// predicate. The wall clock is read exactly once per call.
func Compile(spec FilterSpec) Query {
	return compileAt(spec, time.Now())
}

func compileAt(spec FilterSpec, now time.Time) Query {
	q := Query{
		Equality: map[string]any{},
		Ranges:   map[string]Range{},
		In:       map[string][]string{},
	}

	if spec.Category != "" {
		q.Equality["categoryId"] = objectIDOrString(spec.Category)
	}
	if spec.ShopID != "" {
		q.Equality["shopId"] = objectIDOrString(spec.ShopID)
	}

	if spec.PriceRange.Min != nil || spec.PriceRange.Max != nil {
		q.Ranges["price"] = Range{Min: spec.PriceRange.Min, Max: spec.PriceRange.Max}
	}

	if spec.Shipping.FreeShipping {
		q.Equality["delivery.freeShipping"] = true
	}
	if spec.Shipping.FastShipping {
		q.And = append(q.And, Condition{"delivery.estimatedDeliveryTime", OpLte, 3})
	}
	if spec.Shipping.ShipsToCountry != "" {
		// Bare equality on an array field is a membership test in the store.
		q.Equality["delivery.locations"] = spec.Shipping.ShipsToCountry
	}

	if spec.SellerLocation != "" {
		q.In["shopLocation"] = append(q.In["shopLocation"], spec.SellerLocation)
	}

	if spec.Promoted {
		q.Equality["promoted"] = true
	}
	if spec.NewArrivals {
		q.Equality["newArrivals"] = true
	}
	if spec.HotDeals {
		q.Equality["hotDeals"] = true
	}

	if spec.Discounted {
		switch spec.DiscountType {
		case DiscountPercentage, DiscountFlat:
			q.Equality["discount.type"] = spec.DiscountType
		}
	}
	if spec.Coupons {
		q.Exists = append(q.Exists, "discount.coupon")
	}

	// Top-rated and explicit star thresholds are independent conditions and
	// are deliberately not merged when both fire.
	if spec.SellerRating.TopRated {
		q.And = append(q.And, Condition{"stars", OpGte, topRatedStars})
	}
	if spec.CustomerReviews.StarRating != nil {
		q.And = append(q.And, Condition{"stars", OpGte, *spec.CustomerReviews.StarRating})
	}
	if spec.SellerRating.PositiveFeedback != nil {
		q.And = append(q.And, Condition{"reviewCount", OpGte, *spec.SellerRating.PositiveFeedback})
	}

	if spec.DeliveryTime.Ships7Days {
		q.And = append(q.And, Condition{"delivery.estimatedDeliveryTime", OpLte, 7})
	}
	if spec.DeliveryTime.Ships30Days {
		q.And = append(q.And, Condition{"delivery.estimatedDeliveryTime", OpLte, 30})
	}

	if spec.Brand != "" {
		q.And = append(q.And, Condition{"tags", OpEq, spec.Brand})
	}

	for _, key := range sortedKeys(spec.Attributes) {
		q.And = append(q.And, Condition{"variants.attributes." + key, OpEq, spec.Attributes[key]})
	}

	if spec.Time != "" {
		q.And = append(q.And, Condition{"createdAt", OpGte, creationFloor(spec.Time, now)})
	}

	if spec.SearchQuery != "" {
		q.Search = spec.SearchQuery
	}

	return q
}

// creationFloor computes the lower createdAt bound for a time window. The
// week window rolls back to Sunday keeping the time of day; month and year
// truncate to midnight of day one. Anything else, "all time" included, falls
// back to the epoch, which constrains nothing in practice.
func creationFloor(window string, now time.Time) time.Time {
	switch window {
	case TimeThisWeek:
		return now.AddDate(0, 0, -int(now.Weekday()))
	case TimeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case TimeThisYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Unix(0, 0).UTC()
	}
}

// objectIDOrString coerces identifier filters to ObjectIDs when possible.
// Malformed identifiers pass through as strings and simply match nothing;
// the compiler never fails.
func objectIDOrString(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

// sortedKeys keeps attribute sub-predicates in a stable order across calls.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
