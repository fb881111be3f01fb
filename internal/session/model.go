package session

import (
	"sync"
	"time"
)

// IngredientRef is a priced snapshot of one chosen ingredient. Snapshots are
// decoupled from the catalog so later catalog changes never touch committed
// cart lines.
type IngredientRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CartLine is one committed, priced customization of a food.
type CartLine struct {
	FoodID              string          `json:"food_id"`
	FoodName            string          `json:"food_name"`
	SelectedIngredients []IngredientRef `json:"selected_ingredients"`
	Quantity            int             `json:"quantity"`
	UnitPrice           int             `json:"unit_price"`
}

// Selection is the food currently being customized, before it is committed
// to the cart.
type Selection struct {
	FoodID        string   `json:"food_id"`
	IngredientIDs []string `json:"ingredient_ids"`
}

// Selected reports whether the ingredient id is part of the selection.
func (s *Selection) Selected(id string) bool {
	for _, sel := range s.IngredientIDs {
		if sel == id {
			return true
		}
	}
	return false
}

// Session is one browser tab's transient state. All access goes through the
// session mutex so user actions and gateway callbacks are serialized per
// session.
type Session struct {
	ID        string
	Selection Selection
	Cart      []CartLine

	mu       sync.Mutex
	lastSeen time.Time
}

// Total derives the cart value from the current lines. It is never stored.
func Total(cart []CartLine) int {
	total := 0
	for _, line := range cart {
		total += line.UnitPrice * line.Quantity
	}
	return total
}
