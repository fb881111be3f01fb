package checkout

import (
	"errors"
	"net/http"

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

// --------------------------------------------------
// GET /checkout
// --------------------------------------------------
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.service.State(sessionID(c))})
}

// --------------------------------------------------
// POST /checkout/review
// --------------------------------------------------
func (h *Handler) Review(c *gin.Context) {
	summary, err := h.service.Review(sessionID(c))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrCheckoutInProgress) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// --------------------------------------------------
// POST /checkout/confirm
// --------------------------------------------------
func (h *Handler) Confirm(c *gin.Context) {
	config, err := h.service.Confirm(c.Request.Context(), sessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrOrderCreationFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"widget": config})
}

// --------------------------------------------------
// POST /checkout/verify (widget success callback)
// --------------------------------------------------
func (h *Handler) Verify(c *gin.Context) {
	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.Verify(
		c.Request.Context(),
		sessionID(c),
		req.RazorpayOrderID,
		req.RazorpayPaymentID,
		req.RazorpaySignature,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrVerificationFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"success": false,
				"error":   err.Error(),
			})
		case errors.Is(err, ErrNotAwaitingGateway), errors.Is(err, ErrOrderMismatch):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

// --------------------------------------------------
// POST /checkout/cancel (user backed out / widget dismissed)
// --------------------------------------------------
func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(sessionID(c)); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrCheckoutInProgress) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// Dismissing the widget is not a failure; nothing is recorded.
	c.JSON(http.StatusOK, gin.H{"state": StateBrowsing})
}
