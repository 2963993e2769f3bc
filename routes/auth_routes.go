package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/controllers/auth_controller"
	"github.com/mercato-shop/mercato-backend/controllers/users_controller"
	"github.com/mercato-shop/mercato-backend/middleware"
)

// SetupAuthRoutes registers login, registration and the Google OAuth flow.
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/register", users_controller.Register)

		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.GET("/token/valid", middleware.AuthMiddleware(), auth_controller.TokenValid)
	}
}
