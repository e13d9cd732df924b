package mealplan

import (
	"context"
	"errors"
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/recipe"
)

var (
	ErrNotFound         = errors.New("meal plan entry not found")
	ErrForbidden        = errors.New("you can only delete your own meal plans")
	ErrInvalidMealType  = errors.New("meal type must be BREAKFAST, LUNCH or DINNER")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

type Service struct {
	repo    Repository
	recipes recipe.Repository
}

func NewService(repo Repository, recipes recipe.Repository) *Service {
	return &Service{repo: repo, recipes: recipes}
}

// --------------------------------------------------
// Schedule a recipe
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	userID string,
	recipeID string,
	date time.Time,
	mealType string,
) (*MealPlan, error) {

	if !ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}

	// The recipe must exist at scheduling time.
	rec, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	plan := &MealPlan{
		UserID:   userID,
		RecipeID: recipeID,
		Date:     normalizeDate(date),
		MealType: mealType,
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}

	plan.Recipe = rec
	return plan, nil
}

// --------------------------------------------------
// List scheduled meals in [start, end], recipes attached
// --------------------------------------------------
func (s *Service) List(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]*MealPlan, error) {

	start = normalizeDate(start)
	end = normalizeDate(end)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	plans, err := s.repo.ListBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	// A scheduled meal pointing at a deleted recipe is a data-integrity
	// fault; surface it instead of silently dropping the entry.
	for _, plan := range plans {
		rec, err := s.recipes.FindByID(ctx, plan.RecipeID)
		if err != nil {
			return nil, err
		}
		plan.Recipe = rec
	}

	if plans == nil {
		plans = []*MealPlan{}
	}
	return plans, nil
}

// --------------------------------------------------
// Unschedule (owner only)
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id string, userID string) error {
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

// normalizeDate strips any time-of-day component; scheduling works at
// calendar-date precision.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
