package routes

import (
	"context"
	"net/http"
	"strings"

	"finbot/config"
	"finbot/controllers"
	middlewares "finbot/middleware"
	"finbot/services"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	messageService := services.NewMessageService(db)
	expenseService := services.NewExpenseService(services.ExpenseServiceOptions{
		DB:    db,
		Redis: redisCli,
	})
	chatService := services.NewChatService(services.ChatServiceOptions{
		Messages:   messageService,
		Expenses:   expenseService,
		Completion: services.NewCompletionClient(),
		Melody:     m,
	})

	userController := controllers.NewUserController(db)
	chatController := controllers.NewChatController(chatService)
	messageController := controllers.NewMessageController(messageService)
	expenseController := controllers.NewExpenseController(expenseService)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.DELETE("/auth/logout", controllers.Logout)

	v1.GET("/profile", middlewares.AuthMiddleware(), userController.GetProfile)

	v1.POST("/chat", middlewares.AuthMiddleware(), chatController.HandleChat)
	v1.GET("/messages", middlewares.AuthMiddleware(), messageController.GetMessages)
	v1.DELETE("/messages", middlewares.AuthMiddleware(), messageController.ClearMessages)

	v1.POST("/expenses", middlewares.AuthMiddleware(), expenseController.AddExpense)
	v1.GET("/expenses", middlewares.AuthMiddleware(), expenseController.GetExpenses)
	v1.GET("/expenses/monthly-summary", middlewares.AuthMiddleware(), expenseController.GetMonthlySummary)
	v1.GET("/expenses/top-categories", middlewares.AuthMiddleware(), expenseController.GetTopCategories)

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Avatar uploaded",
			"url":     resp.SecureURL,
		})
	})

	// ws handshake: a valid token binds the session to its user, otherwise
	// the session only carries the anonymous session id.
	v1.GET("/ws", func(c *gin.Context) {
		keys := map[string]interface{}{}

		if sessionId, exists := c.Get("sessionId"); exists {
			keys["sessionId"] = sessionId
		}

		token := strings.TrimPrefix(c.Query("token"), "Bearer ")
		if token != "" {
			if claims, err := services.VerifyToken(token); err == nil {
				keys["userID"] = claims.UserInfo.UserId
			}
		}

		m.HandleRequestWithKeys(c.Writer, c.Request, keys)
	})
}
