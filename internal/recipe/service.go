package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("recipe not found")
	ErrForbidden = errors.New("you can only modify your own recipes")
)

// Storage uploads files and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// CreateInput carries the fields of a new or updated recipe.
type CreateInput struct {
	Title        string
	Category     string
	Difficulty   string
	CookingTime  int
	Servings     int
	Ingredients  []Ingredient
	Instructions []string
}

func validateInput(in CreateInput) error {
	if in.Title == "" {
		return errors.New("title is required")
	}
	if !validCategory(in.Category) {
		return errors.New("invalid category")
	}
	if !validDifficulty(in.Difficulty) {
		return errors.New("invalid difficulty")
	}
	if in.CookingTime < 1 {
		return errors.New("cooking time must be at least 1 minute")
	}
	if in.Servings < 1 {
		return errors.New("servings must be at least 1")
	}
	if len(in.Ingredients) == 0 {
		return errors.New("at least one ingredient is required")
	}
	for _, ing := range in.Ingredients {
		if ing.Name == "" {
			return errors.New("ingredient name is required")
		}
		if ing.Amount < 0 {
			return errors.New("ingredient amount must not be negative")
		}
	}
	if len(in.Instructions) == 0 {
		return errors.New("at least one instruction is required")
	}
	return nil
}

// --------------------------------------------------
// Create recipe
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	userID string,
	in CreateInput,
	photo *multipart.FileHeader,
) (*Recipe, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	recipe := &Recipe{
		UserID:       userID,
		Title:        in.Title,
		Category:     in.Category,
		Difficulty:   in.Difficulty,
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
	}

	if photo != nil {
		url, err := s.uploadPhoto(ctx, photo)
		if err != nil {
			return nil, err
		}
		recipe.Photo = &url
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// --------------------------------------------------
// List recipes (public)
// --------------------------------------------------
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	recipes, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	if recipes == nil {
		recipes = []*Recipe{}
	}

	return &ListResult{
		Recipes:    recipes,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}, nil
}

// --------------------------------------------------
// Get single recipe (public)
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

// GetIngredients returns the ordered ingredient list of a recipe.
// Consumed by the shopping list generation pass.
func (s *Service) GetIngredients(ctx context.Context, recipeID string) ([]Ingredient, error) {
	recipe, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return recipe.Ingredients, nil
}

// --------------------------------------------------
// Update recipe (owner only)
// --------------------------------------------------
func (s *Service) Update(
	ctx context.Context,
	id string,
	userID string,
	in CreateInput,
	photo *multipart.FileHeader,
) (*Recipe, error) {

	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}

	if err := validateInput(in); err != nil {
		return nil, err
	}

	recipe.Title = in.Title
	recipe.Category = in.Category
	recipe.Difficulty = in.Difficulty
	recipe.CookingTime = in.CookingTime
	recipe.Servings = in.Servings
	recipe.Ingredients = in.Ingredients
	recipe.Instructions = in.Instructions

	if photo != nil {
		url, err := s.uploadPhoto(ctx, photo)
		if err != nil {
			return nil, err
		}
		recipe.Photo = &url
	}

	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// --------------------------------------------------
// Delete recipe (owner only)
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id string, userID string) error {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) uploadPhoto(ctx context.Context, photo *multipart.FileHeader) (string, error) {
	if s.storage == nil {
		return "", errors.New("photo storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(photo.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", errors.New("only image files are allowed")
	}

	f, err := photo.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := fmt.Sprintf("recipes/%s%s", uuid.New().String(), ext)
	return s.storage.Upload(ctx, key, f)
}
