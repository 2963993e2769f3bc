package products_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/search"
)

// parseFilterSpec maps the flattened query string of the discovery endpoint
// onto a FilterSpec. Nested groups from the client arrive as flat keys
// (freeShipping, topRated, ...) and the attribute map uses gin's bracket
// syntax: attributes[color]=red&attributes[size]=M. Anything absent or
// unparseable stays unset; the compiler treats unset as unconstrained.
func parseFilterSpec(c *gin.Context) search.FilterSpec {
	return search.FilterSpec{
		Category: c.Query("category"),
		ShopID:   c.Query("shopId"),
		PriceRange: search.PriceRange{
			Min: queryFloat(c, "minPrice"),
			Max: queryFloat(c, "maxPrice"),
		},
		Shipping: search.Shipping{
			FreeShipping:   queryBool(c, "freeShipping"),
			FastShipping:   queryBool(c, "fastShipping"),
			ShipsToCountry: c.Query("shipsToCountry"),
		},
		SellerLocation: c.Query("sellerLocation"),
		SellerRating: search.SellerRating{
			TopRated:         queryBool(c, "topRated"),
			PositiveFeedback: queryInt(c, "positiveFeedback"),
		},
		CustomerReviews: search.CustomerReviews{
			StarRating: queryFloat(c, "starRating"),
		},
		DeliveryTime: search.DeliveryTime{
			Ships7Days:  queryBool(c, "ships7Days"),
			Ships30Days: queryBool(c, "ships30Days"),
		},
		Brand:        c.Query("brand"),
		Attributes:   c.QueryMap("attributes"),
		NewArrivals:  queryBool(c, "newArrivals"),
		HotDeals:     queryBool(c, "hotDeals"),
		Promoted:     queryBool(c, "promoted"),
		Discounted:   queryBool(c, "discounted"),
		DiscountType: c.Query("discountType"),
		Coupons:      queryBool(c, "coupons"),
		Time:         c.Query("time"),
		SearchQuery:  c.Query("searchQuery"),
		Sort:         c.Query("sort"),
		Page:         c.Query("page"),
	}
}

func queryBool(c *gin.Context, name string) bool {
	v := c.Query(name)
	return v == "true" || v == "1"
}

func queryFloat(c *gin.Context, name string) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryInt(c *gin.Context, name string) *int {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
