package products_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
)

// GetProduct returns a single product by id.
func GetProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse("not found!"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var product models.Product
	if err := config.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("not found!"))
			return
		}
		log.Printf("product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(product))
}
