package shoppinglist

import "time"

// ShoppingList is the single list a user owns. It is created lazily on
// first access and its item set is replaced wholesale by every
// generation pass.
type ShoppingList struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []*ShoppingItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ShoppingItem is one consolidated purchasable line. Item ids are not
// stable across regenerations; Checked is the only field a user can
// change, and it resets to false whenever the list is regenerated.
type ShoppingItem struct {
	ID         string    `json:"id"`
	ListID     string    `json:"list_id"`
	Ingredient string    `json:"ingredient"`
	Amount     int       `json:"amount"`
	Unit       string    `json:"unit"`
	Checked    bool      `json:"checked"`
	CreatedAt  time.Time `json:"created_at"`
}
