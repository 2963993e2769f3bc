package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/controllers/carts_controller"
	"github.com/mercato-shop/mercato-backend/middleware"
)

// SetupCartRoutes registers the cart routes. One cart per user, all auth'd.
func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", carts_controller.GetCart)
		cart.POST("", carts_controller.CreateCart)
		cart.PUT("", carts_controller.UpdateCart)
		cart.DELETE("", carts_controller.DeleteCart)
	}
}
