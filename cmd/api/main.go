package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/auth"
	"github.com/yar1l0/Personal-recipe-book/internal/db"
	"github.com/yar1l0/Personal-recipe-book/internal/mealplan"
	"github.com/yar1l0/Personal-recipe-book/internal/middleware"
	"github.com/yar1l0/Personal-recipe-book/internal/recipe"
	"github.com/yar1l0/Personal-recipe-book/internal/shoppinglist"
	"github.com/yar1l0/Personal-recipe-book/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)
	mealPlanRepo := mealplan.NewPostgresRepository(pgDB)
	shoppingRepo := shoppinglist.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	recipeService := recipe.NewService(recipeRepo, r2Client)
	mealPlanService := mealplan.NewService(mealPlanRepo, recipeRepo)
	shoppingService := shoppinglist.NewService(shoppingRepo, mealPlanRepo, recipeRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	recipeHandler := recipe.NewHandler(recipeService)
	mealPlanHandler := mealplan.NewHandler(mealPlanService)
	shoppingHandler := shoppinglist.NewHandler(shoppingService)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", authHandler.GetMe)
		users.PUT("/me", authHandler.UpdateMe)
	}

	// ───────────────────────── RECIPE ROUTES ─────────────────────────
	r.GET("/recipes", recipeHandler.List)
	r.GET("/recipes/:id", recipeHandler.Get)

	recipes := r.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware())
	{
		recipes.POST("", recipeHandler.Create)
		recipes.PUT("/:id", recipeHandler.Update)
		recipes.DELETE("/:id", recipeHandler.Delete)
	}

	// ───────────────────────── MEAL PLAN ROUTES ─────────────────────────
	mealPlans := r.Group("/meal-plan")
	mealPlans.Use(middleware.AuthMiddleware())
	{
		mealPlans.GET("", mealPlanHandler.List)
		mealPlans.POST("", mealPlanHandler.Create)
		mealPlans.DELETE("/:id", mealPlanHandler.Delete)
	}

	// ───────────────────────── SHOPPING LIST ROUTES ─────────────────────────
	shopping := r.Group("/shopping-list")
	shopping.Use(middleware.AuthMiddleware())
	{
		shopping.GET("", shoppingHandler.Get)
		shopping.POST("/generate", shoppingHandler.Generate)
		shopping.PATCH("/items/:id/toggle", shoppingHandler.ToggleItem)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
