package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/models"
)

// TokenValid is an authenticated probe: reaching it means the token passed
// the auth middleware.
func TokenValid(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse("valid"))
}
