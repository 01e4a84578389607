package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finbot/middleware"
	"finbot/models"
	"finbot/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupChatRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Expense{}, &models.ChatMessage{}))

	messageService := services.NewMessageService(db)
	expenseService := services.NewExpenseService(services.ExpenseServiceOptions{DB: db})
	chatService := services.NewChatService(services.ChatServiceOptions{
		Messages:   messageService,
		Expenses:   expenseService,
		Completion: services.NewCompletionClient(),
	})

	router := gin.New()
	router.POST("/api/v1/chat", middleware.AuthMiddleware(), NewChatController(chatService).HandleChat)
	return router, db
}

func authedChatRequest(t *testing.T, userID uint, body string) *http.Request {
	t.Helper()
	token, err := services.GenerateToken(services.UserInfo{UserId: userID}, 60)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// Full expense turn: expense stored, confirmation returned, both chat
// records appended in user-then-bot order.
func TestChatEndpointExpenseTurn(t *testing.T) {
	router, db := setupChatRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedChatRequest(t, 1, `{"message":"I spent 45 on Netflix"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "✅ Noted! You spent ₹45 on Netflix.")

	var expenses []models.Expense
	require.NoError(t, db.Find(&expenses).Error)
	require.Len(t, expenses, 1)
	assert.Equal(t, 45.0, expenses[0].Amount)
	assert.Equal(t, "Entertainment", expenses[0].Category)
	assert.Equal(t, "Netflix", expenses[0].Description)

	var messages []models.ChatMessage
	require.NoError(t, db.Order("timestamp asc").Find(&messages).Error)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Sender)
	assert.Equal(t, "bot", messages[1].Sender)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	router, _ := setupChatRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedChatRequest(t, 1, `{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpointRequiresAuth(t *testing.T) {
	router, _ := setupChatRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
