package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestQueryToBSON(t *testing.T) {
	q := Query{
		Equality: map[string]any{"hotDeals": true},
		Ranges:   map[string]Range{"price": {Min: floatPtr(10), Max: floatPtr(100)}},
		In:       map[string][]string{"shopLocation": {"usa"}},
		Exists:   []string{"discount.coupon"},
		And: []Condition{
			{"stars", OpGte, 4.5},
			{"delivery.estimatedDeliveryTime", OpLte, 7},
			{"tags", OpEq, "acme"},
		},
		Search: "blue shoes",
	}

	assert.Equal(t, bson.M{
		"hotDeals":        true,
		"price":           bson.M{"$gte": 10.0, "$lte": 100.0},
		"shopLocation":    bson.M{"$in": []string{"usa"}},
		"discount.coupon": bson.M{"$exists": true},
		"$text":           bson.M{"$search": "blue shoes"},
		"$and": bson.A{
			bson.M{"stars": bson.M{"$gte": 4.5}},
			bson.M{"delivery.estimatedDeliveryTime": bson.M{"$lte": 7}},
			bson.M{"tags": "acme"},
		},
	}, q.ToBSON())
}

func TestQueryToBSONOmitsEmptyAnd(t *testing.T) {
	filter := compileAt(FilterSpec{HotDeals: true}, testNow).ToBSON()
	assert.NotContains(t, filter, "$and")
	assert.Equal(t, bson.M{"hotDeals": true}, filter)
}

func TestQueryToBSONOpenEndedRange(t *testing.T) {
	filter := Query{Ranges: map[string]Range{"price": {Min: floatPtr(10)}}}.ToBSON()
	assert.Equal(t, bson.M{"price": bson.M{"$gte": 10.0}}, filter)

	filter = Query{Ranges: map[string]Range{"price": {Max: floatPtr(100)}}}.ToBSON()
	assert.Equal(t, bson.M{"price": bson.M{"$lte": 100.0}}, filter)
}

func TestEmptyQueryToBSONIsUniversal(t *testing.T) {
	assert.Equal(t, bson.M{}, compileAt(FilterSpec{}, testNow).ToBSON())
}

func TestSortSpecToBSON(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, ResolveSort(SortPriceAsc).ToBSON())
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, ResolveSort(SortPriceDesc).ToBSON())
	assert.Empty(t, ResolveSort("unknown_mode").ToBSON())
}
