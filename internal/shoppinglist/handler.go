package shoppinglist

import (
	"errors"
	"net/http"
	"time"

	"github.com/yar1l0/Personal-recipe-book/internal/recipe"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type generateRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// --------------------------------------------------
// GET /shopping-list
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	list, err := h.service.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shopping list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// --------------------------------------------------
// POST /shopping-list/generate
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted YYYY-MM-DD"})
		return
	}

	list, err := h.service.Generate(c.Request.Context(), userID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, recipe.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate shopping list"})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}

// --------------------------------------------------
// PATCH /shopping-list/items/:id/toggle
// --------------------------------------------------
func (h *Handler) ToggleItem(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	item, err := h.service.ToggleItem(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle shopping item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
