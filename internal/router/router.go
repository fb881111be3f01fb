package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shyam-3045/food-dispencing-system/internal/actuation"
	"github.com/shyam-3045/food-dispencing-system/internal/catalog"
	"github.com/shyam-3045/food-dispencing-system/internal/checkout"
	"github.com/shyam-3045/food-dispencing-system/internal/middleware"
	"github.com/shyam-3045/food-dispencing-system/internal/session"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Store     *session.Store
	Catalog   *catalog.Handler
	Session   *session.Handler
	Checkout  *checkout.Handler
	Actuation *actuation.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ───────────────────────── CATALOG (public) ─────────────────────────
	r.GET("/foods", h.Catalog.ListFoods)
	r.GET("/foods/:id", h.Catalog.GetFood)

	// ───────────────────────── PER-SESSION FLOW ─────────────────────────
	sess := r.Group("/")
	sess.Use(middleware.Session(h.Store))
	{
		sess.GET("/selection", h.Session.CurrentSelection)
		sess.POST("/selection/food", h.Session.SelectFood)
		sess.DELETE("/selection/food", h.Session.ClearSelection)
		sess.POST("/selection/ingredients/:id/toggle", h.Session.ToggleIngredient)

		sess.GET("/cart", h.Session.Cart)
		sess.POST("/cart", h.Session.AddToCart)
		sess.PATCH("/cart/:index", h.Session.UpdateQuantity)
		sess.DELETE("/cart/:index", h.Session.RemoveFromCart)

		sess.GET("/checkout", h.Checkout.State)
		sess.POST("/checkout/review", h.Checkout.Review)
		sess.POST("/checkout/confirm", h.Checkout.Confirm)
		sess.POST("/checkout/verify", h.Checkout.Verify)
		sess.POST("/checkout/cancel", h.Checkout.Cancel)
	}

	// ───────────────────────── HARDWARE ─────────────────────────
	r.POST("/actuation/servos", h.Actuation.SendServos)
	r.GET("/motor/:state", h.Actuation.SwitchMotor)

	return r
}
