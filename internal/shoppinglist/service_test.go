package shoppinglist

import (
	"context"
	"testing"
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/mealplan"
	"github.com/yar1l0/Personal-recipe-book/internal/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	service  *Service
	recipes  *recipe.InMemoryRepository
	meals    *mealplan.InMemoryRepository
	shopping *InMemoryRepository
}

func newFixture() *fixture {
	recipes := recipe.NewInMemoryRepository()
	meals := mealplan.NewInMemoryRepository()
	shopping := NewInMemoryRepository()
	return &fixture{
		service:  NewService(shopping, meals, recipes),
		recipes:  recipes,
		meals:    meals,
		shopping: shopping,
	}
}

func (f *fixture) addRecipe(t *testing.T, title string, ingredients []recipe.Ingredient) string {
	t.Helper()
	rec := &recipe.Recipe{
		UserID:       "owner",
		Title:        title,
		Category:     recipe.CategoryDinner,
		Difficulty:   recipe.DifficultyEasy,
		CookingTime:  30,
		Servings:     2,
		Ingredients:  ingredients,
		Instructions: []string{"cook"},
	}
	require.NoError(t, f.recipes.Create(context.Background(), rec))
	return rec.ID
}

func (f *fixture) schedule(t *testing.T, userID, recipeID string, day time.Time, mealType string) {
	t.Helper()
	require.NoError(t, f.meals.Create(context.Background(), &mealplan.MealPlan{
		UserID:   userID,
		RecipeID: recipeID,
		Date:     day,
		MealType: mealType,
	}))
}

func TestGetOrCreateIsLazyAndIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.service.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", first.UserID)
	assert.Empty(t, first.Items)

	second, err := f.service.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrCreateRecoversFromCreationRace(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Another request wins the create between lookup and insert.
	existing := &ShoppingList{UserID: "user-1"}
	require.NoError(t, f.shopping.Create(ctx, existing))

	list, err := f.service.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, list.ID)
}

func TestGenerateConsolidatesAcrossRecipes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	pancakes := f.addRecipe(t, "Pancakes", []recipe.Ingredient{
		{Name: "Flour", Amount: 200, Unit: "g"},
		{Name: "Eggs", Amount: 2, Unit: "pcs"},
	})
	bread := f.addRecipe(t, "Bread", []recipe.Ingredient{
		{Name: "flour", Amount: 100, Unit: "G"},
		{Name: "Yeast", Amount: 7, Unit: "g"},
	})

	f.schedule(t, "user-1", pancakes, date(2025, 3, 10), mealplan.MealTypeBreakfast)
	f.schedule(t, "user-1", bread, date(2025, 3, 11), mealplan.MealTypeDinner)

	list, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 11))
	require.NoError(t, err)
	require.Len(t, list.Items, 3)

	assert.Equal(t, "Flour", list.Items[0].Ingredient)
	assert.Equal(t, 300, list.Items[0].Amount)
	assert.Equal(t, "g", list.Items[0].Unit)
	assert.False(t, list.Items[0].Checked)

	assert.Equal(t, "Eggs", list.Items[1].Ingredient)
	assert.Equal(t, "Yeast", list.Items[2].Ingredient)
}

func TestGenerateEmptyWindowYieldsEmptyList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Soup", []recipe.Ingredient{
		{Name: "Carrots", Amount: 3, Unit: "pcs"},
	})
	f.schedule(t, "user-1", rec, date(2025, 3, 20), mealplan.MealTypeLunch)

	// Window before the only scheduled meal.
	list, err := f.service.Generate(ctx, "user-1", date(2025, 3, 1), date(2025, 3, 5))
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestGenerateSingleDayWindowIsInclusive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Soup", []recipe.Ingredient{
		{Name: "Carrots", Amount: 3, Unit: "pcs"},
	})
	f.schedule(t, "user-1", rec, date(2025, 3, 20), mealplan.MealTypeLunch)

	list, err := f.service.Generate(ctx, "user-1", date(2025, 3, 20), date(2025, 3, 20))
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Carrots", list.Items[0].Ingredient)
}

func TestGenerateRejectsInvertedRange(t *testing.T) {
	f := newFixture()

	_, err := f.service.Generate(context.Background(), "user-1",
		date(2025, 3, 11), date(2025, 3, 10))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGenerateIsContentDeterministic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Stew", []recipe.Ingredient{
		{Name: "Beef", Amount: 500, Unit: "g"},
		{Name: "Potatoes", Amount: 4, Unit: "pcs"},
	})
	f.schedule(t, "user-1", rec, date(2025, 3, 10), mealplan.MealTypeDinner)

	first, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	second, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)

	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].Ingredient, second.Items[i].Ingredient)
		assert.Equal(t, first.Items[i].Amount, second.Items[i].Amount)
		assert.Equal(t, first.Items[i].Unit, second.Items[i].Unit)
	}
}

func TestGenerateResetsCheckedState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Stew", []recipe.Ingredient{
		{Name: "Beef", Amount: 500, Unit: "g"},
	})
	f.schedule(t, "user-1", rec, date(2025, 3, 10), mealplan.MealTypeDinner)

	list, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	checked, err := f.service.ToggleItem(ctx, list.Items[0].ID, "user-1")
	require.NoError(t, err)
	require.True(t, checked.Checked)

	regenerated, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	require.Len(t, regenerated.Items, 1)
	assert.False(t, regenerated.Items[0].Checked)
}

func TestGenerateFailsOnMissingRecipeAndKeepsOldItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Stew", []recipe.Ingredient{
		{Name: "Beef", Amount: 500, Unit: "g"},
	})
	f.schedule(t, "user-1", rec, date(2025, 3, 10), mealplan.MealTypeDinner)

	list, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	// Dangling schedule entry: its recipe was never created.
	f.schedule(t, "user-1", "gone-recipe-id", date(2025, 3, 10), mealplan.MealTypeLunch)

	_, err = f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	assert.ErrorIs(t, err, recipe.ErrNotFound)

	// Previous item set untouched.
	current, err := f.service.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, current.Items, 1)
	assert.Equal(t, "Beef", current.Items[0].Ingredient)
}

func TestToggleItemIsAnInvolution(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Stew", []recipe.Ingredient{
		{Name: "Beef", Amount: 500, Unit: "g"},
	})
	f.schedule(t, "user-1", rec, date(2025, 3, 10), mealplan.MealTypeDinner)

	list, err := f.service.Generate(ctx, "user-1", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	itemID := list.Items[0].ID

	once, err := f.service.ToggleItem(ctx, itemID, "user-1")
	require.NoError(t, err)
	assert.True(t, once.Checked)

	twice, err := f.service.ToggleItem(ctx, itemID, "user-1")
	require.NoError(t, err)
	assert.False(t, twice.Checked)
}

func TestToggleItemHidesOtherUsersItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Stew", []recipe.Ingredient{
		{Name: "Beef", Amount: 500, Unit: "g"},
	})
	f.schedule(t, "user-x", rec, date(2025, 3, 10), mealplan.MealTypeDinner)

	list, err := f.service.Generate(ctx, "user-x", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	itemID := list.Items[0].ID

	// User Y asks about user X's item: indistinguishable from a missing id.
	_, err = f.service.ToggleItem(ctx, itemID, "user-y")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = f.service.ToggleItem(ctx, "no-such-item", "user-y")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGenerateIgnoresOtherUsersSchedules(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rec := f.addRecipe(t, "Stew", []recipe.Ingredient{
		{Name: "Beef", Amount: 500, Unit: "g"},
	})
	f.schedule(t, "user-x", rec, date(2025, 3, 10), mealplan.MealTypeDinner)

	list, err := f.service.Generate(ctx, "user-y", date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
