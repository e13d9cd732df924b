package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new recipe
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, recipe *Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return err
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recipes (
			id,
			user_id,
			title,
			category,
			difficulty,
			cooking_time,
			servings,
			photo,
			ingredients,
			instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		recipe.ID,
		recipe.UserID,
		recipe.Title,
		recipe.Category,
		recipe.Difficulty,
		recipe.CookingTime,
		recipe.Servings,
		recipe.Photo,
		ingredients,
		instructions,
	).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
}

// --------------------------------------------------
// Find recipe by id
// --------------------------------------------------
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Recipe, error) {
	query := `
		SELECT
			id,
			user_id,
			title,
			category,
			difficulty,
			cooking_time,
			servings,
			photo,
			ingredients,
			instructions,
			created_at,
			updated_at
		FROM recipes
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)

	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// --------------------------------------------------
// List recipes (paginated, filtered, newest first)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, q ListQuery) ([]*Recipe, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if q.Category != "" {
		args = append(args, q.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if q.Difficulty != "" {
		args = append(args, q.Difficulty)
		where += fmt.Sprintf(" AND difficulty = $%d", len(args))
	}
	if q.MaxCookingTime > 0 {
		args = append(args, q.MaxCookingTime)
		where += fmt.Sprintf(" AND cooking_time <= $%d", len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM recipes"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Limit)
	limitPos := len(args)
	args = append(args, (q.Page-1)*q.Limit)
	offsetPos := len(args)

	query := `
		SELECT
			id,
			user_id,
			title,
			category,
			difficulty,
			cooking_time,
			servings,
			photo,
			ingredients,
			instructions,
			created_at,
			updated_at
		FROM recipes` + where + fmt.Sprintf(`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, limitPos, offsetPos)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recipes []*Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, total, rows.Err()
}

// --------------------------------------------------
// Update recipe
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, recipe *Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return err
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return err
	}

	query := `
		UPDATE recipes
		SET title = $1,
		    category = $2,
		    difficulty = $3,
		    cooking_time = $4,
		    servings = $5,
		    photo = $6,
		    ingredients = $7,
		    instructions = $8,
		    updated_at = now()
		WHERE id = $9
		RETURNING updated_at
	`

	err = r.db.QueryRow(ctx, query,
		recipe.Title,
		recipe.Category,
		recipe.Difficulty,
		recipe.CookingTime,
		recipe.Servings,
		recipe.Photo,
		ingredients,
		instructions,
		recipe.ID,
	).Scan(&recipe.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Delete recipe
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*Recipe, error) {
	recipe := &Recipe{}
	var ingredients, instructions []byte

	if err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.Category,
		&recipe.Difficulty,
		&recipe.CookingTime,
		&recipe.Servings,
		&recipe.Photo,
		&ingredients,
		&instructions,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(instructions, &recipe.Instructions); err != nil {
		return nil, err
	}
	return recipe, nil
}
