package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// expensePattern detects "the user reports having spent an amount on
// something": spent/paid/used, optional currency symbol, integer amount,
// optional "on", then the description. The amount capture is integer-only;
// "spent 12.50 on coffee" comes out as amount 12 with the ".50 on coffee"
// tail in the description. That matches the production behavior this
// assistant shipped with and is pinned by tests.
var expensePattern = regexp.MustCompile(`(?i)(?:spent|paid|used)\s*₹?\s*\$?(\d+)\s*(?:on)?\s*(.+)`)

// ExtractedExpense is the structured result of a matched expense phrase.
type ExtractedExpense struct {
	Amount      float64
	Description string
	Category    string
	Date        time.Time
}

// ExtractExpense applies the expense pattern to a chat message. It returns
// nil when the message does not report an expense; the caller then falls
// through to general conversation handling. Only the first match counts.
func ExtractExpense(message string) *ExtractedExpense {
	return ExtractExpenseAt(message, time.Now())
}

// ExtractExpenseAt is ExtractExpense with an explicit "now" for date fallback.
func ExtractExpenseAt(message string, now time.Time) *ExtractedExpense {
	match := expensePattern.FindStringSubmatch(message)
	if match == nil {
		return nil
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}

	description := strings.TrimSpace(match[2])

	return &ExtractedExpense{
		Amount:      amount,
		Description: description,
		Category:    DetectCategory(description),
		Date:        ParseDateFromMessageAt(message, now),
	}
}
