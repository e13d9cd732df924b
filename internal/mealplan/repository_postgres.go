package mealplan

import (
	"context"
	"errors"
	"time"

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
// Create meal plan entry
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, plan *MealPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}

	query := `
		INSERT INTO meal_plans (id, user_id, recipe_id, date, meal_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query,
		plan.ID,
		plan.UserID,
		plan.RecipeID,
		plan.Date,
		plan.MealType,
	).Scan(&plan.CreatedAt)
}

// --------------------------------------------------
// Find entry by id
// --------------------------------------------------
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*MealPlan, error) {
	query := `
		SELECT id, user_id, recipe_id, date, meal_type, created_at
		FROM meal_plans
		WHERE id = $1
	`

	plan := &MealPlan{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.RecipeID,
		&plan.Date,
		&plan.MealType,
		&plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plan, nil
}

// --------------------------------------------------
// List entries in a date window (both ends inclusive)
// --------------------------------------------------
func (r *PostgresRepository) ListBetween(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]*MealPlan, error) {

	query := `
		SELECT id, user_id, recipe_id, date, meal_type, created_at
		FROM meal_plans
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY
			date ASC,
			CASE meal_type
				WHEN 'BREAKFAST' THEN 0
				WHEN 'LUNCH' THEN 1
				ELSE 2
			END ASC
	`

	rows, err := r.db.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*MealPlan
	for rows.Next() {
		plan := &MealPlan{}
		if err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&plan.RecipeID,
			&plan.Date,
			&plan.MealType,
			&plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

// --------------------------------------------------
// Delete entry
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM meal_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
