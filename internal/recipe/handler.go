package recipe

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// parseForm reads the multipart form fields shared by create and update.
// Ingredients and instructions arrive as JSON-encoded strings next to the
// optional photo file.
func parseForm(c *gin.Context) (CreateInput, error) {
	var in CreateInput

	in.Title = c.PostForm("title")
	in.Category = c.PostForm("category")
	in.Difficulty = c.PostForm("difficulty")

	if v := c.PostForm("cooking_time"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, errors.New("cooking_time must be an integer")
		}
		in.CookingTime = n
	}
	if v := c.PostForm("servings"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, errors.New("servings must be an integer")
		}
		in.Servings = n
	}

	if v := c.PostForm("ingredients"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.Ingredients); err != nil {
			return in, errors.New("ingredients must be a JSON array")
		}
	}
	if v := c.PostForm("instructions"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.Instructions); err != nil {
			return in, errors.New("instructions must be a JSON array")
		}
	}

	return in, nil
}

// --------------------------------------------------
// POST /recipes
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	in, err := parseForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, _ := c.FormFile("photo")

	recipe, err := h.service.Create(c.Request.Context(), userID, in, photo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// --------------------------------------------------
// GET /recipes
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	q := ListQuery{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	q.MaxCookingTime, _ = strconv.Atoi(c.Query("cooking_time"))

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /recipes/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	recipe, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// --------------------------------------------------
// PUT /recipes/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	in, err := parseForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, _ := c.FormFile("photo")

	recipe, err := h.service.Update(c.Request.Context(), c.Param("id"), userID, in, photo)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// --------------------------------------------------
// DELETE /recipes/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := h.service.Delete(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted successfully"})
}
