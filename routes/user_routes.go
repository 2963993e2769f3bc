package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/controllers/users_controller"
	"github.com/mercato-shop/mercato-backend/middleware"
)

// SetupUserRoutes registers the profile routes. All of them require auth.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", users_controller.GetMe)
		user.POST("/update", users_controller.UpdateProfile)
		user.POST("/update-pfp", users_controller.UpdatePfp)
	}
}
