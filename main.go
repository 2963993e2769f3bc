package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mercato-shop/mercato-backend/config"
	"github.com/mercato-shop/mercato-backend/middleware"
	"github.com/mercato-shop/mercato-backend/routes"
	"github.com/mercato-shop/mercato-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to MongoDB
	config.InitDB()
	// Redis connection (rate limiter)
	config.ConnectRedis()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	config.InitGoogleOAuth()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "x-app-token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))

	routes.SetupAuthRoutes(api)
	routes.SetupUserRoutes(api)
	routes.SetupProductRoutes(api)
	routes.SetupCartRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
