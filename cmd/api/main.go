package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shyam-3045/food-dispencing-system/internal/actuation"
	"github.com/shyam-3045/food-dispencing-system/internal/catalog"
	"github.com/shyam-3045/food-dispencing-system/internal/checkout"
	"github.com/shyam-3045/food-dispencing-system/internal/db"
	"github.com/shyam-3045/food-dispencing-system/internal/router"
	"github.com/shyam-3045/food-dispencing-system/internal/session"
	"github.com/shyam-3045/food-dispencing-system/pkg/logging"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"RAZORPAY_KEY_ID",
		"RAZORPAY_KEY_SECRET",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	logging.Setup()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── SESSIONS ─────────────────────────
	store := session.NewStore(session.DefaultTTL)
	stop := make(chan struct{})
	defer close(stop)
	store.StartSweeper(10*time.Minute, stop)

	// ───────────────────────── CORE SERVICES ─────────────────────────
	catalogRepo := catalog.NewInMemoryRepository()
	catalogService := catalog.NewService(catalogRepo)
	cartService := session.NewService(store, catalogService)

	// ───────────────────────── HARDWARE ─────────────────────────
	servoClient := actuation.NewThingSpeakClient(os.Getenv("THINGSPEAK_WRITE_KEY"))

	// One actuation addressing scheme per deployment: per-ingredient
	// channels by default, four-slot servo rig when ACTUATION_MODE=servo.
	var dispenser checkout.Dispenser
	if os.Getenv("ACTUATION_MODE") == "servo" {
		dispenser = actuation.NewServoDispenser(servoClient)
		slog.Info("actuation mode: servo (quantity-to-angle)")
	} else {
		motorClient := actuation.NewMotorClient(getEnv("MOTOR_CONTROLLER_URL", "http://localhost:5000"))
		dispenser = actuation.NewMapper(actuation.DefaultChannelMap, motorClient)
		slog.Info("actuation mode: per-ingredient channels")
	}

	// ───────────────────────── CHECKOUT ─────────────────────────
	gateway := checkout.NewRazorpayClient(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)
	orderRepo := checkout.NewPostgresRepository(pgDB)
	checkoutService := checkout.NewService(cartService, gateway, orderRepo, dispenser)

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Store:    store,
		Catalog:  catalog.NewHandler(catalogService),
		Session:  session.NewHandler(cartService),
		Checkout: checkout.NewHandler(checkoutService),
		Actuation: actuation.NewHandler(
			servoClient,
			getEnv("MOTOR_DEVICE_URL", "http://192.168.4.1"),
		),
	}

	// ───────────────────────── GIN ─────────────────────────
	r := router.New(handlers)

	// ───────────────────────── START ─────────────────────────
	port := getEnv("PORT", "8000")
	log.Printf("🚀 API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
