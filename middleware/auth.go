package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/models"
	"github.com/mercato-shop/mercato-backend/services"
)

// AuthMiddleware validates the JWT from the Authorization header or the
// legacy x-app-token header and loads the user document into the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := services.GetJWTService().ValidateToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		ctx, cancel := config.WithRequestTimeout(c.Request.Context())
		defer cancel()

		var user models.User
		if err := config.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", user.ID.Hex())
		c.Set("user", user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.GetHeader("x-app-token")
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse("Please login to continue!"))
	c.Abort()
}

// GetUserFromContext returns the authenticated user set by AuthMiddleware.
func GetUserFromContext(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
