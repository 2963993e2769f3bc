package products_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/products?"+rawQuery, nil)
	return c
}

func TestParseFilterSpecFull(t *testing.T) {
	c := filterContext(t, "category=abc&shopId=def&minPrice=10&maxPrice=100"+
		"&freeShipping=true&fastShipping=1&shipsToCountry=DE"+
		"&sellerLocation=china&topRated=true&positiveFeedback=200&starRating=3.5"+
		"&ships7Days=true&ships30Days=true&brand=acme"+
		"&attributes[color]=red&attributes[size]=M"+
		"&newArrivals=true&hotDeals=true&promoted=true"+
		"&discounted=true&discountType=PERCENTAGE&coupons=true"+
		"&time=this+month&searchQuery=blue+shoes&sort=price_asc&page=2")

	spec := parseFilterSpec(c)

	assert.Equal(t, "abc", spec.Category)
	assert.Equal(t, "def", spec.ShopID)
	require.NotNil(t, spec.PriceRange.Min)
	assert.Equal(t, 10.0, *spec.PriceRange.Min)
	require.NotNil(t, spec.PriceRange.Max)
	assert.Equal(t, 100.0, *spec.PriceRange.Max)
	assert.True(t, spec.Shipping.FreeShipping)
	assert.True(t, spec.Shipping.FastShipping)
	assert.Equal(t, "DE", spec.Shipping.ShipsToCountry)
	assert.Equal(t, "china", spec.SellerLocation)
	assert.True(t, spec.SellerRating.TopRated)
	require.NotNil(t, spec.SellerRating.PositiveFeedback)
	assert.Equal(t, 200, *spec.SellerRating.PositiveFeedback)
	require.NotNil(t, spec.CustomerReviews.StarRating)
	assert.Equal(t, 3.5, *spec.CustomerReviews.StarRating)
	assert.True(t, spec.DeliveryTime.Ships7Days)
	assert.True(t, spec.DeliveryTime.Ships30Days)
	assert.Equal(t, "acme", spec.Brand)
	assert.Equal(t, map[string]string{"color": "red", "size": "M"}, spec.Attributes)
	assert.True(t, spec.NewArrivals)
	assert.True(t, spec.HotDeals)
	assert.True(t, spec.Promoted)
	assert.True(t, spec.Discounted)
	assert.Equal(t, "PERCENTAGE", spec.DiscountType)
	assert.True(t, spec.Coupons)
	assert.Equal(t, "this month", spec.Time)
	assert.Equal(t, "blue shoes", spec.SearchQuery)
	assert.Equal(t, "price_asc", spec.Sort)
	assert.Equal(t, "2", spec.Page)
}

func TestParseFilterSpecEmptyQuery(t *testing.T) {
	spec := parseFilterSpec(filterContext(t, ""))

	assert.Empty(t, spec.Category)
	assert.Nil(t, spec.PriceRange.Min)
	assert.Nil(t, spec.PriceRange.Max)
	assert.Nil(t, spec.SellerRating.PositiveFeedback)
	assert.Nil(t, spec.CustomerReviews.StarRating)
	assert.False(t, spec.Shipping.FreeShipping)
	assert.Empty(t, spec.Attributes)
	assert.Empty(t, spec.Page)
}

func TestParseFilterSpecIgnoresGarbageNumbers(t *testing.T) {
	spec := parseFilterSpec(filterContext(t, "minPrice=cheap&starRating=lots&positiveFeedback=1e3"))

	assert.Nil(t, spec.PriceRange.Min)
	assert.Nil(t, spec.CustomerReviews.StarRating)
	assert.Nil(t, spec.SellerRating.PositiveFeedback)
}
