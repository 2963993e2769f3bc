package products_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/middleware"
	"github.com/mercato-shop/mercato-backend/models"
)

// CreateProductInput is the accepted body for product creation.
type CreateProductInput struct {
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description" binding:"required"`
	Details       string           `json:"details"`
	Price         float64          `json:"price" binding:"required,gte=0"`
	ImageLinks    []string         `json:"imageLinks"`
	Tags          []string         `json:"tags"`
	NumberInStock int              `json:"numberInStock"`
	ShopLocation  []string         `json:"shopLocation"`
	Delivery      models.Delivery  `json:"delivery"`
	Discount      *models.Discount `json:"discount"`
	Variants      models.Variants  `json:"variants"`
	HotDeals      bool             `json:"hotDeals"`
}

// CreateProduct creates a product owned by the authenticated user.
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	now := time.Now()
	product := models.Product{
		Title:         input.Title,
		Description:   input.Description,
		Details:       input.Details,
		Price:         input.Price,
		ImageLinks:    input.ImageLinks,
		Tags:          input.Tags,
		NumberInStock: input.NumberInStock,
		ShopLocation:  input.ShopLocation,
		Delivery:      input.Delivery,
		Discount:      input.Discount,
		Variants:      input.Variants,
		HotDeals:      input.HotDeals,
		UserID:        user.ID,
		Status:        models.ProductDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.ImageLinks == nil {
		product.ImageLinks = []string{}
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	result, err := config.Products.InsertOne(ctx, product)
	if err != nil {
		log.Printf("product insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to create product"))
		return
	}
	product.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusOK, models.SuccessResponse(product))
}
