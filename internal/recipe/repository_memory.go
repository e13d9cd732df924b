package recipe

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	recipes map[string]*Recipe
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		recipes: make(map[string]*Recipe),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, recipe *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	stored := *recipe
	r.recipes[recipe.ID] = &stored
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (r *InMemoryRepository) List(ctx context.Context, q ListQuery) ([]*Recipe, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*Recipe
	for _, recipe := range r.recipes {
		if q.Category != "" && recipe.Category != q.Category {
			continue
		}
		if q.Difficulty != "" && recipe.Difficulty != q.Difficulty {
			continue
		}
		if q.MaxCookingTime > 0 && recipe.CookingTime > q.MaxCookingTime {
			continue
		}
		copied := *recipe
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, recipe *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[recipe.ID]; !ok {
		return ErrNotFound
	}
	recipe.UpdatedAt = time.Now()
	stored := *recipe
	r.recipes[recipe.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}
