package users_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
	"github.com/mercato-shop/mercato-backend/services"
)

type RegisterInput struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=4,max=128"`
	Phone        string `json:"phone" binding:"required,e164"`
	CountryCode  string `json:"countryCode"`
	CityName     string `json:"cityName"`
	CurrencyCode string `json:"currencyCode"`
	Language     string `json:"language"`
}

// Register creates a new user account and issues a JWT.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}
	email := strings.ToLower(input.Email)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	count, err := config.Users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("register lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to register"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("this account exists, please login!"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		log.Printf("password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to register"))
		return
	}

	now := time.Now()
	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Password:     string(hashed),
		Phone:        input.Phone,
		CountryCode:  input.CountryCode,
		CityName:     input.CityName,
		CurrencyCode: input.CurrencyCode,
		Language:     input.Language,
		Role:         models.RoleUser,
		Status:       models.StatusPendingVerification,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := config.Users.InsertOne(ctx, user)
	if err != nil {
		// Unique index on email catches the race between check and insert.
		c.JSON(http.StatusBadRequest, models.ErrorResponse("this account exists, please login!"))
		return
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	token, err := services.GetJWTService().GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to register"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"user": user, "token": token}))
}
