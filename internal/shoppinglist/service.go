package shoppinglist

import (
	"context"
	"errors"
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/mealplan"
	"github.com/yar1l0/Personal-recipe-book/internal/recipe"
)

var (
	ErrListNotFound     = errors.New("shopping list not found")
	ErrItemNotFound     = errors.New("shopping item not found")
	ErrDuplicateList    = errors.New("shopping list already exists for user")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

type Service struct {
	repo    Repository
	meals   mealplan.Repository
	recipes recipe.Repository
}

func NewService(
	repo Repository,
	meals mealplan.Repository,
	recipes recipe.Repository,
) *Service {
	return &Service{
		repo:    repo,
		meals:   meals,
		recipes: recipes,
	}
}

// --------------------------------------------------
// Get (or lazily create) the user's list
// --------------------------------------------------
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*ShoppingList, error) {
	list, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, ErrListNotFound) {
		return nil, err
	}

	list = &ShoppingList{UserID: userID}
	err = s.repo.Create(ctx, list)
	if err == nil {
		return list, nil
	}

	// Someone else created the list between our lookup and insert;
	// the row is there now, fetch it.
	if errors.Is(err, ErrDuplicateList) {
		return s.repo.FindByUser(ctx, userID)
	}
	return nil, err
}

// --------------------------------------------------
// Regenerate the list from the scheduled meals in [start, end]
// --------------------------------------------------
// The previous item set is replaced wholesale: ids change, checkmarks
// reset. If anything fails along the way the old set stays untouched.
func (s *Service) Generate(
	ctx context.Context,
	userID string,
	start, end time.Time,
) (*ShoppingList, error) {

	start = normalizeDate(start)
	end = normalizeDate(end)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	list, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	plans, err := s.meals.ListBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	ingredientLists := make([][]recipe.Ingredient, 0, len(plans))
	for _, plan := range plans {
		rec, err := s.recipes.FindByID(ctx, plan.RecipeID)
		if err != nil {
			// A scheduled meal pointing at a deleted recipe would make
			// the generated list silently incomplete; fail instead.
			return nil, err
		}
		ingredientLists = append(ingredientLists, rec.Ingredients)
	}

	consolidated := Aggregate(ingredientLists)

	items := make([]*ShoppingItem, 0, len(consolidated))
	for _, entry := range consolidated {
		items = append(items, &ShoppingItem{
			Ingredient: entry.Ingredient,
			Amount:     entry.Amount,
			Unit:       entry.Unit,
			Checked:    false,
		})
	}

	if err := s.repo.ReplaceItems(ctx, list.ID, items); err != nil {
		return nil, err
	}

	list.Items = items
	return list, nil
}

// --------------------------------------------------
// Toggle one item's checked flag
// --------------------------------------------------
// An item belonging to another user is reported as not found, so the
// response does not reveal whether the id exists at all.
func (s *Service) ToggleItem(ctx context.Context, itemID, userID string) (*ShoppingItem, error) {
	return s.repo.ToggleItem(ctx, itemID, userID)
}

// normalizeDate strips any time-of-day component; the window covers the
// whole of both boundary dates.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
