package mealplan

import (
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/recipe"
)

const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeDinner    = "DINNER"
)

// mealTypeRank fixes the within-day ordering: breakfast, lunch, dinner.
func mealTypeRank(mealType string) int {
	switch mealType {
	case MealTypeBreakfast:
		return 0
	case MealTypeLunch:
		return 1
	case MealTypeDinner:
		return 2
	}
	return 3
}

func ValidMealType(mealType string) bool {
	return mealTypeRank(mealType) < 3
}

// MealPlan assigns one recipe to one calendar date and meal slot for a user.
// Entries are created on scheduling and deleted on unscheduling, never
// edited in place.
type MealPlan struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	RecipeID  string         `json:"recipe_id"`
	Date      time.Time      `json:"date"`
	MealType  string         `json:"meal_type"`
	CreatedAt time.Time      `json:"created_at"`
	Recipe    *recipe.Recipe `json:"recipe,omitempty"`
}
