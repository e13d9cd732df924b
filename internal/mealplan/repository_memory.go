package mealplan

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	plans map[string]*MealPlan
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		plans: make(map[string]*MealPlan),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, plan *MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()

	stored := *plan
	stored.Recipe = nil
	r.plans[plan.ID] = &stored
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*MealPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *plan
	return &copied, nil
}

func (r *InMemoryRepository) ListBetween(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]*MealPlan, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var plans []*MealPlan
	for _, plan := range r.plans {
		if plan.UserID != userID {
			continue
		}
		if plan.Date.Before(start) || plan.Date.After(end) {
			continue
		}
		copied := *plan
		plans = append(plans, &copied)
	}

	sort.Slice(plans, func(i, j int) bool {
		if !plans[i].Date.Equal(plans[j].Date) {
			return plans[i].Date.Before(plans[j].Date)
		}
		return mealTypeRank(plans[i].MealType) < mealTypeRank(plans[j].MealType)
	})

	return plans, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[id]; !ok {
		return ErrNotFound
	}
	delete(r.plans, id)
	return nil
}
