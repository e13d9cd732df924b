package recipe

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, recipe *Recipe) error
	FindByID(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context, query ListQuery) ([]*Recipe, int, error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id string) error
}
