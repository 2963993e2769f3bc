package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
	"github.com/mercato-shop/mercato-backend/services"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user by email and password and issues a JWT.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid email, please recheck!"))
		return
	}
	email := strings.ToLower(input.Email)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var user models.User
	if err := config.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Incorrect email"))
			return
		}
		log.Printf("login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to login"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Incorrect password"))
		return
	}

	token, err := services.GetJWTService().GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to login"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"user": user, "token": token}))
}
