package constants

// Expense categories
const (
	CategoryTravel        = "Travel"
	CategoryFood          = "Food"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryHealth        = "Health"
	CategoryOthers        = "Others"
)

// Categories lists every valid expense category, classifier rule order.
var Categories = []string{
	CategoryTravel,
	CategoryFood,
	CategoryShopping,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealth,
	CategoryOthers,
}

// Message senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)
