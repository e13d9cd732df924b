package shoppinglist

import "github.com/yar1l0/Personal-recipe-book/internal/recipe"

// ConsolidatedItem is one purchasable line produced by folding ingredient
// lists together. Ingredient and Unit keep the spelling of the first
// occurrence of the merge key; Amount is the integer sum of every
// occurrence.
type ConsolidatedItem struct {
	Ingredient string
	Amount     int
	Unit       string
}

// Aggregate folds the ingredient lists of the scheduled recipes, in the
// order the meal-window resolver returned them, into one consolidated
// list. The fold is pure: the same ordered input always yields the same
// output, in first-seen key order.
func Aggregate(ingredientLists [][]recipe.Ingredient) []ConsolidatedItem {
	byKey := make(map[string]int)
	var items []ConsolidatedItem

	for _, list := range ingredientLists {
		for _, ing := range list {
			key := MergeKey(ing.Name, ing.Unit)
			if idx, ok := byKey[key]; ok {
				items[idx].Amount += ing.Amount
				continue
			}
			byKey[key] = len(items)
			items = append(items, ConsolidatedItem{
				Ingredient: ing.Name,
				Amount:     ing.Amount,
				Unit:       ing.Unit,
			})
		}
	}

	return items
}
