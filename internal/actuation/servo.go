package actuation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shyam-3045/food-dispencing-system/internal/session"
	"github.com/shyam-3045/food-dispencing-system/pkg/metrics"
)

// ServoCount is the number of positional actuators on the demo rig.
const ServoCount = 4

const thingSpeakBaseURL = "https://api.thingspeak.com"

// QuantityToAngle maps an order quantity to a servo angle
// (1 → 45°, 2 → 90°, 3 → 135°, 4+ → 180°).
func QuantityToAngle(quantity int) int {
	angle := 45 * quantity
	if angle > 180 {
		angle = 180
	}
	if angle < 0 {
		angle = 0
	}
	return angle
}

// Angles computes the four servo positions for a dispense request: the
// first selectedCount servos are driven to the quantity angle, the rest are
// held at the neutral default of 0.
func Angles(quantity, selectedCount int) [ServoCount]int {
	var angles [ServoCount]int

	if selectedCount > ServoCount {
		selectedCount = ServoCount
	}
	for i := 0; i < selectedCount; i++ {
		angles[i] = QuantityToAngle(quantity)
	}
	return angles
}

// ThingSpeakClient forwards servo angles to a ThingSpeak channel as
// field1..field4 of an update call.
type ThingSpeakClient struct {
	writeKey string
	baseURL  string
	http     *http.Client
}

func NewThingSpeakClient(writeKey string) *ThingSpeakClient {
	return &ThingSpeakClient{
		writeKey: writeKey,
		baseURL:  thingSpeakBaseURL,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Update pushes the angles and returns the provider's raw response text.
// ThingSpeak answers with the entry id (or "0" when the channel throttled
// the write) — callers surface it but nothing depends on it.
func (t *ThingSpeakClient) Update(ctx context.Context, angles [ServoCount]int) (string, error) {
	url := fmt.Sprintf(
		"%s/update?api_key=%s&field1=%d&field2=%d&field3=%d&field4=%d",
		t.baseURL,
		t.writeKey,
		angles[0], angles[1], angles[2], angles[3],
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrActivationFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: thingspeak returned %d", ErrActivationFailed, resp.StatusCode)
	}

	return string(raw), nil
}

// ServoDispenser is the quantity-to-angle deployment mode: four fixed
// positional actuators instead of per-ingredient channels. It derives a
// single dispense quantity from the cart (total units ordered) and drives
// one servo per distinct ingredient, capped at the rig size.
//
// A deployment runs either this or Mapper, never both.
type ServoDispenser struct {
	ts *ThingSpeakClient
}

func NewServoDispenser(ts *ThingSpeakClient) *ServoDispenser {
	return &ServoDispenser{ts: ts}
}

func (d *ServoDispenser) Dispense(ctx context.Context, lines []session.CartLine) error {
	quantity := 0
	distinct := make(map[string]bool)

	for _, line := range lines {
		quantity += line.Quantity
		for _, ing := range line.SelectedIngredients {
			distinct[ing.ID] = true
		}
	}

	angles := Angles(quantity, len(distinct))

	resp, err := d.ts.Update(ctx, angles)
	if err != nil {
		metrics.ActuationRequests.WithLabelValues("error").Inc()
		slog.Warn("servo update failed", "angles", angles, "error", err)
		return err
	}

	metrics.ActuationRequests.WithLabelValues("ok").Inc()
	slog.Debug("servo update sent", "angles", angles, "response", resp)
	return nil
}
