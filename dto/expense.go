package dto

type ExpenseInput struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"omitempty,category"`
	Date        string  `json:"date"` // "2006-01-02", defaults to today
	Description string  `json:"description"`
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
