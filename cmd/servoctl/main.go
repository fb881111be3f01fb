package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shyam-3045/food-dispencing-system/internal/actuation"
)

// servoctl drives one servo of the demo rig to a fixed angle while holding
// the others at the neutral default. Handy for bench-testing the hardware
// without going through an order.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	servo := flag.Int("servo", 1, "servo number (1-4)")
	angle := flag.Int("angle", 0, "target angle in degrees (0-180)")
	flag.Parse()

	if *servo < 1 || *servo > actuation.ServoCount {
		log.Fatalf("servo must be between 1 and %d", actuation.ServoCount)
	}
	if *angle < 0 || *angle > 180 {
		log.Fatal("angle must be between 0 and 180")
	}

	writeKey := os.Getenv("THINGSPEAK_WRITE_KEY")
	if writeKey == "" {
		log.Fatal("THINGSPEAK_WRITE_KEY is not set in .env")
	}

	var angles [actuation.ServoCount]int
	angles[*servo-1] = *angle

	client := actuation.NewThingSpeakClient(writeKey)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	resp, err := client.Update(ctx, angles)
	if err != nil {
		log.Fatalf("⚠️  Servo update failed: %v", err)
	}

	log.Printf("✅ Servo %d moved to %d° (entry: %s)", *servo, *angle, resp)
}
