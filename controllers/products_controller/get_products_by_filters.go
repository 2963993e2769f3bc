package products_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
	"github.com/mercato-shop/mercato-backend/search"
)

// GetProductsByFilters is the product discovery endpoint. The handler only
// parses the query string and shapes the response; compiling the predicate
// and running find+count concurrently lives in the search package.
func GetProductsByFilters(c *gin.Context) {
	spec := parseFilterSpec(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	envelope, err := search.Run(ctx, search.NewMongoProductStore(config.Products), spec)
	if err != nil {
		log.Printf("product search failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(envelope))
}
