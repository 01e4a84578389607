package validator

import (
	"time"

	"finbot/constants"
	"finbot/dto"
	"finbot/errors"
	"finbot/services"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings installs custom rules on gin's binding engine. The
// "category" rule accepts any label that snaps onto the fixed category
// set, typos included; the controller normalizes it afterwards.
func RegisterBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return services.NormalizeCategory(fl.Field().String()) != ""
		})
	}
}

// IsValidCategory reports whether label is one of the fixed categories.
func IsValidCategory(label string) bool {
	for _, cat := range constants.Categories {
		if cat == label {
			return true
		}
	}
	return false
}

// ValidateExpenseInput checks the direct add-expense payload beyond what
// binding tags cover.
func ValidateExpenseInput(input *dto.ExpenseInput) error {
	if input.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must be greater than zero", nil)
	}

	if input.Date != "" {
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "Date must be in YYYY-MM-DD format", err)
		}
	}

	if input.Category == "" && input.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Either category or description is required", nil)
	}

	return nil
}
