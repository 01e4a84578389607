package controllers

import (
	"strconv"
	"strings"
	"time"

	"finbot/dto"
	"finbot/middleware"
	"finbot/models"
	"finbot/response"
	"finbot/services"
	"finbot/validator"

	"github.com/gin-gonic/gin"
)

var monthNameToNumber = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

type ExpenseController struct {
	Expenses *services.ExpenseService
}

func NewExpenseController(expenses *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Expenses: expenses}
}

// parseMonthQuery reads an optional ?month= value, either a number (7) or
// an English month name (July). Returns nil when absent.
func parseMonthQuery(c *gin.Context) (*int, bool) {
	raw := c.Query("month")
	if raw == "" {
		return nil, true
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > 12 {
			return nil, false
		}
		return &n, true
	}

	if n, ok := monthNameToNumber[strings.ToLower(raw)]; ok {
		return &n, true
	}
	return nil, false
}

// AddExpense records an expense stated directly by the caller. A supplied
// category is snapped onto the fixed set; otherwise the category comes
// from classifying the description.
func (ctrl *ExpenseController) AddExpense(c *gin.Context) {
	var input dto.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateExpenseInput(&input); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	category := services.NormalizeCategory(input.Category)
	if category == "" {
		category = services.DetectCategory(input.Description)
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			response.ValidationError(c, "Date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	expense := models.Expense{
		UserID:      userID,
		Amount:      input.Amount,
		Category:    category,
		Date:        date,
		Description: input.Description,
	}
	if err := ctrl.Expenses.Append(&expense); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, expense)
}

// GetExpenses lists the caller's expenses, optionally scoped to a month
// of the current year.
func (ctrl *ExpenseController) GetExpenses(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	month, ok := parseMonthQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid month value")
		return
	}

	expenses, err := ctrl.Expenses.ListForUser(userID, month)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, expenses, int64(len(expenses)))
}

// GetMonthlySummary returns per-month totals, ascending month number.
func (ctrl *ExpenseController) GetMonthlySummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	summary, err := ctrl.Expenses.MonthlySummary(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, summary)
}

// GetTopCategories returns per-category totals, descending by total,
// optionally scoped to a month of the current year.
func (ctrl *ExpenseController) GetTopCategories(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	month, ok := parseMonthQuery(c)
	if !ok {
		response.BadRequest(c, "Invalid month value")
		return
	}

	categories, err := ctrl.Expenses.TopCategories(userID, month)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, categories)
}
