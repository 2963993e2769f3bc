package products_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
)

// UpdateProductInput carries the updatable product fields. Pointers
// distinguish "leave unchanged" from explicit values.
type UpdateProductInput struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Details       *string          `json:"details"`
	Price         *float64         `json:"price"`
	ImageLinks    []string         `json:"imageLinks"`
	Tags          []string         `json:"tags"`
	NumberInStock *int             `json:"numberInStock"`
	Status        *string          `json:"status"`
	Delivery      *models.Delivery `json:"delivery"`
	Discount      *models.Discount `json:"discount"`
	Variants      *models.Variants `json:"variants"`
	HotDeals      *bool            `json:"hotDeals"`
}

// UpdateProduct applies a partial update to a product.
func UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Product not found!"))
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Details != nil {
		set["details"] = *input.Details
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.ImageLinks != nil {
		set["imageLinks"] = input.ImageLinks
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.NumberInStock != nil {
		set["numberInStock"] = *input.NumberInStock
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Delivery != nil {
		set["delivery"] = *input.Delivery
	}
	if input.Discount != nil {
		set["discount"] = *input.Discount
	}
	if input.Variants != nil {
		set["variants"] = *input.Variants
	}
	if input.HotDeals != nil {
		set["hotDeals"] = *input.HotDeals
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err = config.Products.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Product not found!"))
			return
		}
		log.Printf("product update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to update product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(product))
}
