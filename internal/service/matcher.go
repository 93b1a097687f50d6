package service

import (
	"strings"

	"github.com/pageza/ecocart/backend/internal/models"
)

// brandNoise holds brand tokens stripped from product names before matching.
// A word is dropped when it contains any of them.
var brandNoise = []string{"tata", "sampann", "real", "conventional"}

// CleanProductName lowercases name and removes brand words.
func CleanProductName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	kept := words[:0]
	for _, word := range words {
		if !containsAny(word, brandNoise) {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// MatchRecipes returns the recipes sharing at least one ingredient with the
// given product names. A cleaned name and an ingredient match when either
// contains the other. Names that clean to nothing match nothing.
func MatchRecipes(productNames []string, recipes []models.Recipe) []models.Recipe {
	cleaned := make([]string, 0, len(productNames))
	for _, name := range productNames {
		if c := CleanProductName(name); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	matches := make([]models.Recipe, 0)
	for _, recipe := range recipes {
		if recipeMatches(cleaned, recipe.Ingredients) {
			matches = append(matches, recipe)
		}
	}
	return matches
}

func recipeMatches(products []string, ingredients []string) bool {
	for _, ingredient := range ingredients {
		ingredient = strings.ToLower(ingredient)
		if ingredient == "" {
			continue
		}
		for _, product := range products {
			if strings.Contains(ingredient, product) || strings.Contains(product, ingredient) {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
