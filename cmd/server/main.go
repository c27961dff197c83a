package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"atrid_reportes/internal/repositories"
	"atrid_reportes/internal/router"
	"atrid_reportes/internal/services"
	"atrid_reportes/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// A missing .env is fine; configuration falls back to real env vars.
	_ = godotenv.Load()

	utils.InitLogger()

	// Order backend configuration
	ordersBaseURL := utils.Getenv("ORDERS_API_BASE_URL", "http://localhost:4000")
	timeoutSeconds, err := utils.StrToInt64(utils.Getenv("ORDERS_API_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 15
	}

	orderSource := repositories.NewOrderRepository(ordersBaseURL, time.Duration(timeoutSeconds)*time.Second)
	store := services.NewOrderStore(orderSource)

	defaultRate := utils.Getenv("COMMISSION_RATE_DEFAULT", "0")
	if rate, err := decimal.NewFromString(defaultRate); err == nil && !rate.IsNegative() {
		store.SetCommissionRate(rate)
	} else {
		utils.LogInfo("Ignoring invalid COMMISSION_RATE_DEFAULT", map[string]interface{}{"value": defaultRate})
	}

	utils.LogInfo("Order backend configured", map[string]interface{}{"base_url": ordersBaseURL, "timeout_seconds": timeoutSeconds})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, store)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
