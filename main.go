package main

import (
	"log"
	"net/http"
	"os"

	"finbot/config"
	"finbot/jobs"
	"finbot/routes"
	"finbot/services"
	"finbot/services/logger"
	"finbot/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to environment variables: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	validator.RegisterBindings()

	expenseService := services.NewExpenseService(services.ExpenseServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetDigestBroadcaster(expenseService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
