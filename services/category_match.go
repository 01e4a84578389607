package services

import (
	"strings"

	"finbot/constants"

	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var categoryMatcher = closestmatch.New(lowerCategories(), []int{2, 3})

func lowerCategories() []string {
	out := make([]string, 0, len(constants.Categories))
	for _, cat := range constants.Categories {
		out = append(out, strings.ToLower(cat))
	}
	return out
}

func isSimilar(a, b string) bool {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return distance <= 2
}

// NormalizeCategory snaps a caller-supplied category label onto the fixed
// set, tolerating small typos ("Fod" -> "Food", "travell" -> "Travel").
// Returns "" when the input is not close to any known label; the caller
// should then derive the category from the description instead.
func NormalizeCategory(input string) string {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "" {
		return ""
	}

	for _, cat := range constants.Categories {
		if strings.EqualFold(cat, raw) {
			return cat
		}
	}

	closest := categoryMatcher.Closest(raw)
	if closest == "" || !isSimilar(raw, closest) {
		return ""
	}

	for _, cat := range constants.Categories {
		if strings.EqualFold(cat, closest) {
			return cat
		}
	}
	return ""
}
