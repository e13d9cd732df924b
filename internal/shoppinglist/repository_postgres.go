package shoppinglist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Find a user's list, items included
// --------------------------------------------------
func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) (*ShoppingList, error) {
	list := &ShoppingList{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM shopping_lists
		WHERE user_id = $1
	`, userID).Scan(&list.ID, &list.UserID, &list.CreatedAt, &list.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, list_id, ingredient, amount, unit, checked, created_at
		FROM shopping_items
		WHERE list_id = $1
		ORDER BY created_at ASC, ingredient ASC
	`, list.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list.Items = []*ShoppingItem{}
	for rows.Next() {
		item := &ShoppingItem{}
		if err := rows.Scan(
			&item.ID,
			&item.ListID,
			&item.Ingredient,
			&item.Amount,
			&item.Unit,
			&item.Checked,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}

	return list, rows.Err()
}

// --------------------------------------------------
// Create an empty list (one per user, enforced by the DB)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, list *ShoppingList) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO shopping_lists (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`, list.ID, list.UserID).Scan(&list.CreatedAt, &list.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateList
		}
		return err
	}

	list.Items = []*ShoppingItem{}
	return nil
}

// --------------------------------------------------
// Replace the entire item set in one transaction
// --------------------------------------------------
func (r *PostgresRepository) ReplaceItems(
	ctx context.Context,
	listID string,
	items []*ShoppingItem,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM shopping_items WHERE list_id = $1
	`, listID); err != nil {
		return err
	}

	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ListID = listID

		if err := tx.QueryRow(ctx, `
			INSERT INTO shopping_items (id, list_id, ingredient, amount, unit, checked)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`, item.ID, item.ListID, item.Ingredient, item.Amount, item.Unit, item.Checked,
		).Scan(&item.CreatedAt); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		UPDATE shopping_lists SET updated_at = now() WHERE id = $1
	`, listID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Flip an item's checked flag, scoped to the owning user
// --------------------------------------------------
func (r *PostgresRepository) ToggleItem(
	ctx context.Context,
	itemID, userID string,
) (*ShoppingItem, error) {

	// The ownership check and the flip happen in one statement; an item
	// owned by someone else looks exactly like a missing item.
	item := &ShoppingItem{}
	err := r.db.QueryRow(ctx, `
		UPDATE shopping_items si
		SET checked = NOT checked
		FROM shopping_lists sl
		WHERE si.id = $1
		  AND sl.id = si.list_id
		  AND sl.user_id = $2
		RETURNING si.id, si.list_id, si.ingredient, si.amount, si.unit, si.checked, si.created_at
	`, itemID, userID).Scan(
		&item.ID,
		&item.ListID,
		&item.Ingredient,
		&item.Amount,
		&item.Unit,
		&item.Checked,
		&item.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
