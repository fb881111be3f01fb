package actuation

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/shyam-3045/food-dispencing-system/internal/session"
	"github.com/shyam-3045/food-dispencing-system/pkg/metrics"
)

// DefaultChannelMap wires each catalog ingredient to its physical dispenser
// channel. Ingredients without an entry simply have no hardware behind them.
var DefaultChannelMap = map[string]int{
	"ing1": 0,
	"ing2": 1,
	"ing3": 2,
	"ing4": 3,
	"ing5": 4,
	"ing6": 5,
}

// Mapper dispenses a paid cart by activating one channel per distinct
// ingredient across all lines.
type Mapper struct {
	channels map[string]int
	client   Client
}

func NewMapper(channels map[string]int, client Client) *Mapper {
	if channels == nil {
		channels = DefaultChannelMap
	}
	return &Mapper{channels: channels, client: client}
}

// Channels resolves the distinct, sorted channel set for the cart. Unmapped
// ingredient ids are dropped; a channel shared by several ingredients or
// lines appears once.
func (m *Mapper) Channels(lines []session.CartLine) []int {
	seen := make(map[int]bool)

	for _, line := range lines {
		for _, ing := range line.SelectedIngredients {
			if ch, ok := m.channels[ing.ID]; ok {
				seen[ch] = true
			}
		}
	}

	channels := make([]int, 0, len(seen))
	for ch := range seen {
		channels = append(channels, ch)
	}
	sort.Ints(channels)
	return channels
}

// Dispense activates every resolved channel exactly once. Requests run
// concurrently and independently: one channel failing never stops the
// others, and the first error is only reported so the caller can log it —
// a verified payment is never rolled back over hardware trouble.
func (m *Mapper) Dispense(ctx context.Context, lines []session.CartLine) error {
	var g errgroup.Group

	for _, ch := range m.Channels(lines) {
		ch := ch
		g.Go(func() error {
			if err := m.client.Activate(ctx, ch); err != nil {
				metrics.ActuationRequests.WithLabelValues("error").Inc()
				slog.Warn("channel activation failed", "channel", ch, "error", err)
				return err
			}

			metrics.ActuationRequests.WithLabelValues("ok").Inc()
			slog.Debug("channel activated", "channel", ch)
			return nil
		})
	}

	return g.Wait()
}
