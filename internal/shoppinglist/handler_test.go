package shoppinglist

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/auth"
	"github.com/yar1l0/Personal-recipe-book/internal/mealplan"
	"github.com/yar1l0/Personal-recipe-book/internal/middleware"
	"github.com/yar1l0/Personal-recipe-book/internal/recipe"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(service *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(service)

	group := r.Group("/shopping-list")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("", handler.Get)
		group.POST("/generate", handler.Generate)
		group.PATCH("/items/:id/toggle", handler.ToggleItem)
	}

	return r
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, userID+"@example.com")
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return "Bearer " + token
}

func seedSchedule(t *testing.T, f *fixture, userID string) {
	t.Helper()
	recipeID := f.addRecipe(t, "Pancakes", []recipe.Ingredient{
		{Name: "Flour", Amount: 200, Unit: "g"},
		{Name: "Milk", Amount: 300, Unit: "ml"},
	})
	f.schedule(t, userID, recipeID, date(2025, 3, 10), mealplan.MealTypeBreakfast)
}

func TestGetShoppingListCreatesLazily(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	f := newFixture()
	r := setupTestRouter(f.service)

	req := httptest.NewRequest(http.MethodGet, "/shopping-list", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var list ShoppingList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if list.UserID != "user-1" {
		t.Fatalf("expected list for user-1, got %q", list.UserID)
	}
	if len(list.Items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(list.Items))
	}
}

func TestGenerateEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	f := newFixture()
	seedSchedule(t, f, "user-1")
	r := setupTestRouter(f.service)

	body, _ := json.Marshal(map[string]string{
		"startDate": "2025-03-10",
		"endDate":   "2025-03-10",
	})
	req := httptest.NewRequest(http.MethodPost, "/shopping-list/generate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, "user-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var list ShoppingList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
}

func TestGenerateEndpointRejectsBadDates(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	f := newFixture()
	r := setupTestRouter(f.service)

	cases := []map[string]string{
		{"startDate": "not-a-date", "endDate": "2025-03-10"},
		{"startDate": "2025-03-10", "endDate": "10/03/2025"},
		{"startDate": "2025-03-11", "endDate": "2025-03-10"},
	}

	for _, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/shopping-list/generate", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, "user-1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("payload %v: expected status 400, got %d", payload, w.Code)
		}
	}
}

func TestToggleEndpointWrongOwnerIsNotFound(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	f := newFixture()
	seedSchedule(t, f, "user-x")
	r := setupTestRouter(f.service)

	list, err := f.service.Generate(context.Background(), "user-x",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch,
		"/shopping-list/items/"+list.Items[0].ID+"/toggle", nil)
	req.Header.Set("Authorization", bearerToken(t, "user-y"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestShoppingListRequiresAuth(t *testing.T) {
	f := newFixture()
	r := setupTestRouter(f.service)

	req := httptest.NewRequest(http.MethodGet, "/shopping-list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
