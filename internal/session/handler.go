package session

import (
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

func sessionID(c *gin.Context) string {
	return c.GetString("sessionID")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownFood), errors.Is(err, ErrLineOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, ErrNoFoodSelected), errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrUnknownIngredient):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// --------------------------------------------------
// POST /selection/food
// --------------------------------------------------
func (h *Handler) SelectFood(c *gin.Context) {
	var req struct {
		FoodID string `json:"food_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.FoodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_id is required"})
		return
	}

	food, err := h.service.SelectFood(sessionID(c), req.FoodID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

// --------------------------------------------------
// DELETE /selection/food (back to menu)
// --------------------------------------------------
func (h *Handler) ClearSelection(c *gin.Context) {
	if err := h.service.ClearSelection(sessionID(c)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// --------------------------------------------------
// POST /selection/ingredients/:id/toggle
// --------------------------------------------------
func (h *Handler) ToggleIngredient(c *gin.Context) {
	sel, err := h.service.ToggleIngredient(sessionID(c), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

// --------------------------------------------------
// GET /selection
// --------------------------------------------------
func (h *Handler) CurrentSelection(c *gin.Context) {
	sel, price, err := h.service.CurrentSelection(sessionID(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"price":     price,
	})
}

// --------------------------------------------------
// POST /cart (commit the current customization)
// --------------------------------------------------
func (h *Handler) AddToCart(c *gin.Context) {
	line, err := h.service.AddToCart(sessionID(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"line": line})
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Cart(c *gin.Context) {
	lines, total, err := h.service.Cart(sessionID(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lines": lines,
		"total": total,
	})
}

// --------------------------------------------------
// PATCH /cart/:index
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateQuantity(sessionID(c), index, req.Quantity); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	lines, total, err := h.service.Cart(sessionID(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lines": lines, "total": total})
}

// --------------------------------------------------
// DELETE /cart/:index
// --------------------------------------------------
func (h *Handler) RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
		return
	}

	if err := h.service.RemoveFromCart(sessionID(c), index); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
