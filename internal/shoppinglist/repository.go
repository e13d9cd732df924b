package shoppinglist

import "context"

// Repository defines the data-access contract for lists and their items.
//
// Create must fail with ErrDuplicateList when a list already exists for
// the user (unique constraint), so the service can treat a concurrent
// first-create as a benign race and re-fetch.
//
// ReplaceItems must swap the entire item set atomically: a concurrent
// reader sees either the old set or the new one, never an empty list
// mid-replace.
type Repository interface {
	FindByUser(ctx context.Context, userID string) (*ShoppingList, error)
	Create(ctx context.Context, list *ShoppingList) error
	ReplaceItems(ctx context.Context, listID string, items []*ShoppingItem) error
	ToggleItem(ctx context.Context, itemID, userID string) (*ShoppingItem, error)
}
