package recipe

import "time"

// Ingredient is one line of a recipe's ingredient list.
// Amount is a non-negative integer in the given unit; no unit
// conversion happens anywhere in the system.
type Ingredient struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

type Recipe struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Difficulty   string       `json:"difficulty"`
	CookingTime  int          `json:"cooking_time"`
	Servings     int          `json:"servings"`
	Photo        *string      `json:"photo,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

const (
	CategoryBreakfast = "BREAKFAST"
	CategoryLunch     = "LUNCH"
	CategoryDinner    = "DINNER"
	CategoryDessert   = "DESSERT"
	CategorySnack     = "SNACK"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

func validCategory(c string) bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack:
		return true
	}
	return false
}

func validDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ListQuery carries pagination and filters for the public recipe listing.
type ListQuery struct {
	Page           int
	Limit          int
	Category       string
	Difficulty     string
	MaxCookingTime int
}

// ListResult is a single page of recipes.
type ListResult struct {
	Recipes    []*Recipe `json:"recipes"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
