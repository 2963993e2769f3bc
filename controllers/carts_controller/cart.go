package carts_controller

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
	"github.com/mercato-shop/mercato-backend/middleware"
	"github.com/mercato-shop/mercato-backend/models"
)

// GetCart returns the authenticated user's cart, or null data when none
// exists yet.
func GetCart(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var cart models.Cart
	err := config.Carts.FindOne(ctx, bson.M{"userId": user.ID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, models.SuccessResponse(nil))
			return
		}
		log.Printf("cart lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(cart))
}

// CartInput is the accepted body for cart create and replace.
type CartInput struct {
	Items             []models.CartItem `json:"items"`
	AppliedCouponCode string            `json:"appliedCouponCode"`
	DiscountAmount    float64           `json:"discountAmount"`
}

// CreateCart creates the user's cart. A user has at most one cart; if it
// already exists it is returned unchanged.
func CreateCart(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	var input CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var existing models.Cart
	err := config.Carts.FindOne(ctx, bson.M{"userId": user.ID}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(existing))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("cart lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to create cart"))
		return
	}

	now := time.Now()
	cart := models.Cart{
		UserID:            user.ID,
		Items:             input.Items,
		AppliedCouponCode: input.AppliedCouponCode,
		DiscountAmount:    input.DiscountAmount,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	result, err := config.Carts.InsertOne(ctx, cart)
	if err != nil {
		log.Printf("cart insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to create cart"))
		return
	}
	cart.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusOK, models.SuccessResponse(cart))
}

// UpdateCart replaces the cart's contents.
func UpdateCart(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	var input CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}
	if input.Items == nil {
		input.Items = []models.CartItem{}
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	set := bson.M{
		"items":             input.Items,
		"appliedCouponCode": input.AppliedCouponCode,
		"discountAmount":    input.DiscountAmount,
		"updatedAt":         time.Now(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cart models.Cart
	err := config.Carts.FindOneAndUpdate(ctx, bson.M{"userId": user.ID}, bson.M{"$set": set}, opts).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Cart not found!"))
			return
		}
		log.Printf("cart update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to update cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(cart))
}

// DeleteCart removes the user's cart.
func DeleteCart(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	result, err := config.Carts.DeleteOne(ctx, bson.M{"userId": user.ID})
	if err != nil {
		log.Printf("cart delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to delete cart"))
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Cart not found!"))
		return
	}

	c.JSON(http.StatusOK, models.ApiResponse{Ok: true})
}
