package services

import (
	"strings"

	"finbot/constants"

	"github.com/fiam/gounidecode/unidecode"
)

// categoryRule maps a set of keywords onto a category label.
// Rules are checked top to bottom, first match wins.
type categoryRule struct {
	Label    string
	Keywords []string
}

var categoryRules = []categoryRule{
	{constants.CategoryTravel, []string{"uber", "bus", "train", "flight"}},
	{constants.CategoryFood, []string{"pizza", "burger", "restaurant", "cafe"}},
	{constants.CategoryShopping, []string{"shoes", "jeans", "clothes", "t-shirt"}},
	{constants.CategoryEntertainment, []string{"movie", "netflix", "spotify"}},
	{constants.CategoryUtilities, []string{"electricity", "water", "internet", "rent"}},
	{constants.CategoryHealth, []string{"doctor", "medicine", "hospital"}},
}

// DetectCategory maps a free-text description to an expense category.
// Matching is case-insensitive substring search with diacritics folded,
// so "Café" still lands on Food. Falls back to Others.
func DetectCategory(description string) string {
	desc := strings.ToLower(unidecode.Unidecode(description))

	for _, rule := range categoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, keyword) {
				return rule.Label
			}
		}
	}
	return constants.CategoryOthers
}
