package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /foods
// --------------------------------------------------
func (h *Handler) ListFoods(c *gin.Context) {
	foods, err := h.service.ListFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// --------------------------------------------------
// GET /foods/:id
// --------------------------------------------------
func (h *Handler) GetFood(c *gin.Context) {
	food, err := h.service.GetFood(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food":        food,
		"ingredients": GroupByCategory(food.Ingredients),
	})
}
