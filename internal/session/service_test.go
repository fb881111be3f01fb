package session

import (
	"errors"
	"testing"

	"github.com/shyam-3045/food-dispencing-system/internal/catalog"
)

type fakeCatalogRepo struct {
	foods []catalog.Food
}

func (r *fakeCatalogRepo) ListFoods() ([]catalog.Food, error) {
	return r.foods, nil
}

func (r *fakeCatalogRepo) GetFood(id string) (*catalog.Food, error) {
	for i := range r.foods {
		if r.foods[i].ID == id {
			return &r.foods[i], nil
		}
	}
	return nil, errors.New("food not found")
}

func newTestService() (*Service, string) {
	repo := &fakeCatalogRepo{
		foods: []catalog.Food{
			{
				ID:   "1",
				Name: "Tomato Rice",
				Ingredients: []catalog.Ingredient{
					{ID: "rice", Name: "Rice", Price: 40, Available: true, Category: "base"},
					{ID: "oil", Name: "Oil", Price: 15, Available: true, Category: "oil"},
					{ID: "saffron", Name: "Saffron", Price: 200, Available: false, Category: "spice"},
				},
			},
		},
	}

	store := NewStore(0)
	sess := store.Create()

	return NewService(store, catalog.NewService(repo)), sess.ID
}

func TestToggleIngredientTwiceRestoresSelection(t *testing.T) {
	svc, sid := newTestService()

	if _, err := svc.SelectFood(sid, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ToggleIngredient(sid, "rice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel, _, _ := svc.CurrentSelection(sid)
	if !sel.Selected("rice") {
		t.Fatal("rice should be selected after first toggle")
	}

	if _, err := svc.ToggleIngredient(sid, "rice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel, _, _ = svc.CurrentSelection(sid)
	if sel.Selected("rice") {
		t.Fatal("rice should be deselected after second toggle")
	}
	if len(sel.IngredientIDs) != 0 {
		t.Fatalf("selection should be empty, got %v", sel.IngredientIDs)
	}
}

func TestToggleUnavailableIngredientIsNoOp(t *testing.T) {
	svc, sid := newTestService()

	svc.SelectFood(sid, "1")

	sel, err := svc.ToggleIngredient(sid, "saffron")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Selected("saffron") {
		t.Fatal("unavailable ingredient must not be selectable")
	}
}

func TestToggleRequiresSelectedFood(t *testing.T) {
	svc, sid := newTestService()

	if _, err := svc.ToggleIngredient(sid, "rice"); !errors.Is(err, ErrNoFoodSelected) {
		t.Fatalf("expected ErrNoFoodSelected, got %v", err)
	}
}

func TestAddToCartWithEmptySelectionLeavesCartUnchanged(t *testing.T) {
	svc, sid := newTestService()

	// no food selected at all
	if _, err := svc.AddToCart(sid); !errors.Is(err, ErrNoFoodSelected) {
		t.Fatalf("expected ErrNoFoodSelected, got %v", err)
	}

	// food selected but no ingredients
	svc.SelectFood(sid, "1")
	if _, err := svc.AddToCart(sid); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}

	lines, total, _ := svc.Cart(sid)
	if len(lines) != 0 || total != 0 {
		t.Fatalf("cart should be untouched, got %d lines / total %d", len(lines), total)
	}
}

func TestAddToCartSnapshotsAndClearsSelection(t *testing.T) {
	svc, sid := newTestService()

	svc.SelectFood(sid, "1")
	svc.ToggleIngredient(sid, "rice")
	svc.ToggleIngredient(sid, "oil")

	line, err := svc.AddToCart(sid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.UnitPrice != 55 {
		t.Errorf("unit price = %d, want 55", line.UnitPrice)
	}
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}
	if len(line.SelectedIngredients) != 2 {
		t.Fatalf("snapshot has %d ingredients, want 2", len(line.SelectedIngredients))
	}
	if line.SelectedIngredients[0].ID != "rice" || line.SelectedIngredients[0].Price != 40 {
		t.Errorf("first snapshot ingredient = %+v", line.SelectedIngredients[0])
	}

	sel, _, _ := svc.CurrentSelection(sid)
	if sel.FoodID != "" || len(sel.IngredientIDs) != 0 {
		t.Fatalf("selection should be cleared after add, got %+v", sel)
	}
}

func TestCartQuantityAndRemoval(t *testing.T) {
	svc, sid := newTestService()

	addLine := func() {
		svc.SelectFood(sid, "1")
		svc.ToggleIngredient(sid, "rice")
		svc.ToggleIngredient(sid, "oil")
		if _, err := svc.AddToCart(sid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	addLine()
	addLine()

	// only line 1 changes
	if err := svc.UpdateQuantity(sid, 1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, total, _ := svc.Cart(sid)
	if lines[0].Quantity != 1 || lines[1].Quantity != 3 {
		t.Fatalf("quantities = %d,%d, want 1,3", lines[0].Quantity, lines[1].Quantity)
	}
	if total != 55+165 {
		t.Errorf("total = %d, want 220", total)
	}

	// zero removes
	if err := svc.UpdateQuantity(sid, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, _, _ = svc.Cart(sid)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(lines))
	}

	// negative removes too
	if err := svc.UpdateQuantity(sid, 0, -5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines, total, _ = svc.Cart(sid)
	if len(lines) != 0 || total != 0 {
		t.Fatalf("cart should be empty, got %d lines / total %d", len(lines), total)
	}

	// removing from an empty cart errors
	if err := svc.RemoveFromCart(sid, 0); !errors.Is(err, ErrLineOutOfRange) {
		t.Fatalf("expected ErrLineOutOfRange, got %v", err)
	}
}

// Full scenario: select rice+oil -> 55, add -> cart 55, qty 3 -> 165,
// remove -> 0.
func TestOrderScenario(t *testing.T) {
	svc, sid := newTestService()

	svc.SelectFood(sid, "1")
	svc.ToggleIngredient(sid, "rice")
	svc.ToggleIngredient(sid, "oil")

	_, price, _ := svc.CurrentSelection(sid)
	if price != 55 {
		t.Fatalf("selection price = %d, want 55", price)
	}

	if _, err := svc.AddToCart(sid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, total, _ := svc.Cart(sid)
	if len(lines) != 1 || lines[0].UnitPrice != 55 || lines[0].Quantity != 1 || total != 55 {
		t.Fatalf("after add: lines=%d unit=%d qty=%d total=%d", len(lines), lines[0].UnitPrice, lines[0].Quantity, total)
	}

	svc.UpdateQuantity(sid, 0, 3)
	_, total, _ = svc.Cart(sid)
	if total != 165 {
		t.Fatalf("total after qty 3 = %d, want 165", total)
	}

	svc.RemoveFromCart(sid, 0)
	_, total, _ = svc.Cart(sid)
	if total != 0 {
		t.Fatalf("total after removal = %d, want 0", total)
	}
}
