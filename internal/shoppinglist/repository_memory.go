package shoppinglist

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	lists map[string]*ShoppingList // keyed by userID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		lists: make(map[string]*ShoppingList),
	}
}

func (r *InMemoryRepository) FindByUser(ctx context.Context, userID string) (*ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[userID]
	if !ok {
		return nil, ErrListNotFound
	}
	return copyList(list), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, list *ShoppingList) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lists[list.UserID]; ok {
		return ErrDuplicateList
	}

	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	now := time.Now()
	list.CreatedAt = now
	list.UpdatedAt = now
	list.Items = []*ShoppingItem{}

	r.lists[list.UserID] = copyList(list)
	return nil
}

func (r *InMemoryRepository) ReplaceItems(
	ctx context.Context,
	listID string,
	items []*ShoppingItem,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.findByID(listID)
	if list == nil {
		return ErrListNotFound
	}

	now := time.Now()
	replacement := make([]*ShoppingItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ListID = listID
		item.CreatedAt = now

		copied := *item
		replacement = append(replacement, &copied)
	}

	// Single swap: readers never observe a half-replaced set.
	list.Items = replacement
	list.UpdatedAt = now
	return nil
}

func (r *InMemoryRepository) ToggleItem(
	ctx context.Context,
	itemID, userID string,
) (*ShoppingItem, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[userID]
	if !ok {
		return nil, ErrItemNotFound
	}

	for _, item := range list.Items {
		if item.ID == itemID {
			item.Checked = !item.Checked
			copied := *item
			return &copied, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *InMemoryRepository) findByID(listID string) *ShoppingList {
	for _, list := range r.lists {
		if list.ID == listID {
			return list
		}
	}
	return nil
}

func copyList(list *ShoppingList) *ShoppingList {
	copied := *list
	copied.Items = make([]*ShoppingItem, 0, len(list.Items))
	for _, item := range list.Items {
		itemCopy := *item
		copied.Items = append(copied.Items, &itemCopy)
	}
	return &copied
}
