package products_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
)

// DeleteProduct removes a product by id.
func DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Product not found!"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	result, err := config.Products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Printf("product delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to delete product"))
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Product not found!"))
		return
	}

	c.JSON(http.StatusOK, models.ApiResponse{Ok: true})
}
