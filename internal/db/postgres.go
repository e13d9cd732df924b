package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES
	// -------------------------------
	recipesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			title VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			difficulty VARCHAR(50) NOT NULL,
			cooking_time INT NOT NULL,
			servings INT NOT NULL,
			photo VARCHAR(500) NULL,
			ingredients JSONB NOT NULL,
			instructions JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, recipesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEAL PLANS
	// -------------------------------
	mealPlansSQL := `
		CREATE TABLE IF NOT EXISTS meal_plans (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			recipe_id UUID NOT NULL,
			date DATE NOT NULL,
			meal_type VARCHAR(20) NOT NULL
				CHECK (meal_type IN ('BREAKFAST', 'LUNCH', 'DINNER')),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, mealPlansSQL); err != nil {
		return err
	}

	mealPlansIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_meal_plans_user_date
		ON meal_plans (user_id, date)
	`
	if _, err := pool.Exec(ctx, mealPlansIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// SHOPPING LISTS (ONE PER USER)
	// -------------------------------
	shoppingListsSQL := `
		CREATE TABLE IF NOT EXISTS shopping_lists (
			id UUID PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, shoppingListsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SHOPPING ITEMS
	// -------------------------------
	shoppingItemsSQL := `
		CREATE TABLE IF NOT EXISTS shopping_items (
			id UUID PRIMARY KEY,
			list_id UUID NOT NULL REFERENCES shopping_lists(id) ON DELETE CASCADE,
			ingredient VARCHAR(255) NOT NULL,
			amount INT NOT NULL,
			unit VARCHAR(50) NOT NULL,
			checked BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, shoppingItemsSQL); err != nil {
		return err
	}

	shoppingItemsIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_shopping_items_list
		ON shopping_items (list_id)
	`
	if _, err := pool.Exec(ctx, shoppingItemsIndexSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
