package actuation

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	servos    *ThingSpeakClient
	deviceURL string
	http      *http.Client
}

func NewHandler(servos *ThingSpeakClient, deviceURL string) *Handler {
	return &Handler{
		servos:    servos,
		deviceURL: deviceURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// --------------------------------------------------
// POST /actuation/servos (quantity-to-angle mode)
// --------------------------------------------------
func (h *Handler) SendServos(c *gin.Context) {
	var req struct {
		Quantity            int      `json:"quantity"`
		SelectedIngredients []string `json:"selected_ingredients"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	angles := Angles(req.Quantity, len(req.SelectedIngredients))

	resp, err := h.servos.Update(c.Request.Context(), angles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "failed to send to ThingSpeak",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"servo_angles": angles,
		"response":     resp,
	})
}

// --------------------------------------------------
// GET /motor/:state ("on" | "off", proxied to the device)
// --------------------------------------------------
func (h *Handler) SwitchMotor(c *gin.Context) {
	state := c.Param("state")
	if state != "on" && state != "off" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state must be on or off"})
		return
	}

	req, err := http.NewRequestWithContext(
		c.Request.Context(),
		http.MethodGet,
		h.deviceURL+"/motor/"+state,
		nil,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.http.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "device unreachable"})
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	status := "no response"
	if len(body) > 0 {
		status = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"motor":  state,
		"status": status,
	})
}
