package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mercato-shop/mercato-backend/controllers/products_controller"
	"github.com/mercato-shop/mercato-backend/middleware"
)

// SetupProductRoutes registers the public discovery/read routes and the
// authenticated write routes.
func SetupProductRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", products_controller.GetProductsByFilters)
		products.GET("/:id", products_controller.GetProduct)

		products.POST("", middleware.AuthMiddleware(), products_controller.CreateProduct)
		products.PUT("/:id", middleware.AuthMiddleware(), products_controller.UpdateProduct)
		products.DELETE("/:id", middleware.AuthMiddleware(), products_controller.DeleteProduct)
	}
}
