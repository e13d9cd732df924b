package mealplan

import (
	"context"
	"time"
)

// Repository defines the data-access contract.
// ListBetween returns entries for the inclusive [start, end] window,
// ordered by date ascending then breakfast < lunch < dinner, so callers
// that fold over the result are deterministic.
type Repository interface {
	Create(ctx context.Context, plan *MealPlan) error
	FindByID(ctx context.Context, id string) (*MealPlan, error)
	ListBetween(ctx context.Context, userID string, start, end time.Time) ([]*MealPlan, error)
	Delete(ctx context.Context, id string) error
}
