package session

import (
	"errors"

	"github.com/shyam-3045/food-dispencing-system/internal/catalog"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNoFoodSelected    = errors.New("no food selected")
	ErrEmptySelection    = errors.New("no ingredients selected")
	ErrLineOutOfRange    = errors.New("cart line does not exist")
	ErrUnknownFood       = errors.New("food not found")
	ErrUnknownIngredient = errors.New("ingredient not offered for this food")
)

type Service struct {
	store   *Store
	catalog *catalog.Service
}

func NewService(store *Store, catalogService *catalog.Service) *Service {
	return &Service{store: store, catalog: catalogService}
}

// --------------------------------------------------
// Select a food to customize
// --------------------------------------------------
func (s *Service) SelectFood(sessionID, foodID string) (*catalog.Food, error) {
	food, err := s.catalog.GetFood(foodID)
	if err != nil {
		return nil, ErrUnknownFood
	}

	err = s.store.Update(sessionID, func(sess *Session) error {
		// Picking a food always starts a fresh customization
		sess.Selection = Selection{FoodID: food.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return food, nil
}

// --------------------------------------------------
// Back to menu (abandon customization)
// --------------------------------------------------
func (s *Service) ClearSelection(sessionID string) error {
	return s.store.Update(sessionID, func(sess *Session) error {
		sess.Selection = Selection{}
		return nil
	})
}

// --------------------------------------------------
// Toggle an ingredient on the current food
// --------------------------------------------------
func (s *Service) ToggleIngredient(sessionID, ingredientID string) (*Selection, error) {
	var out Selection

	err := s.store.Update(sessionID, func(sess *Session) error {
		if sess.Selection.FoodID == "" {
			return ErrNoFoodSelected
		}

		food, err := s.catalog.GetFood(sess.Selection.FoodID)
		if err != nil {
			return ErrUnknownFood
		}

		ing := food.Ingredient(ingredientID)
		if ing == nil {
			return ErrUnknownIngredient
		}

		// Unavailable ingredients are untoggleable even if the UI
		// forgets to disable the control.
		if !ing.Available {
			out = sess.Selection
			return nil
		}

		if sess.Selection.Selected(ingredientID) {
			kept := sess.Selection.IngredientIDs[:0]
			for _, id := range sess.Selection.IngredientIDs {
				if id != ingredientID {
					kept = append(kept, id)
				}
			}
			sess.Selection.IngredientIDs = kept
		} else {
			sess.Selection.IngredientIDs = append(sess.Selection.IngredientIDs, ingredientID)
		}

		out = sess.Selection
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// --------------------------------------------------
// Current selection + live price
// --------------------------------------------------
func (s *Service) CurrentSelection(sessionID string) (*Selection, int, error) {
	var (
		sel   Selection
		price int
	)

	err := s.store.Update(sessionID, func(sess *Session) error {
		sel = sess.Selection
		if sel.FoodID == "" {
			return nil
		}

		food, err := s.catalog.GetFood(sel.FoodID)
		if err != nil {
			return nil
		}

		price = catalog.Price(food, sel.IngredientIDs)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &sel, price, nil
}

// --------------------------------------------------
// Add the current customization to the cart
// --------------------------------------------------
func (s *Service) AddToCart(sessionID string) (*CartLine, error) {
	var line CartLine

	err := s.store.Update(sessionID, func(sess *Session) error {
		if sess.Selection.FoodID == "" {
			return ErrNoFoodSelected
		}
		if len(sess.Selection.IngredientIDs) == 0 {
			return ErrEmptySelection
		}

		food, err := s.catalog.GetFood(sess.Selection.FoodID)
		if err != nil {
			return ErrUnknownFood
		}

		var refs []IngredientRef
		for _, id := range sess.Selection.IngredientIDs {
			ing := food.Ingredient(id)
			if ing == nil {
				continue
			}
			refs = append(refs, IngredientRef{
				ID:    ing.ID,
				Name:  ing.Name,
				Price: ing.Price,
			})
		}

		line = CartLine{
			FoodID:              food.ID,
			FoodName:            food.Name,
			SelectedIngredients: refs,
			Quantity:            1,
			UnitPrice:           catalog.Price(food, sess.Selection.IngredientIDs),
		}

		sess.Cart = append(sess.Cart, line)
		sess.Selection = Selection{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &line, nil
}

// --------------------------------------------------
// Change a line's quantity (<= 0 removes the line)
// --------------------------------------------------
func (s *Service) UpdateQuantity(sessionID string, index, quantity int) error {
	return s.store.Update(sessionID, func(sess *Session) error {
		if index < 0 || index >= len(sess.Cart) {
			return ErrLineOutOfRange
		}

		if quantity <= 0 {
			sess.Cart = append(sess.Cart[:index], sess.Cart[index+1:]...)
			return nil
		}

		sess.Cart[index].Quantity = quantity
		return nil
	})
}

// --------------------------------------------------
// Remove a line outright
// --------------------------------------------------
func (s *Service) RemoveFromCart(sessionID string, index int) error {
	return s.store.Update(sessionID, func(sess *Session) error {
		if index < 0 || index >= len(sess.Cart) {
			return ErrLineOutOfRange
		}

		sess.Cart = append(sess.Cart[:index], sess.Cart[index+1:]...)
		return nil
	})
}

// --------------------------------------------------
// Cart snapshot + derived total
// --------------------------------------------------
func (s *Service) Cart(sessionID string) ([]CartLine, int, error) {
	var lines []CartLine

	err := s.store.Update(sessionID, func(sess *Session) error {
		lines = make([]CartLine, len(sess.Cart))
		copy(lines, sess.Cart)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return lines, Total(lines), nil
}

// --------------------------------------------------
// Empty the cart (after a completed order)
// --------------------------------------------------
func (s *Service) ClearCart(sessionID string) error {
	return s.store.Update(sessionID, func(sess *Session) error {
		sess.Cart = nil
		return nil
	})
}
