package catalog

import "errors"

// ingredients is the full dispensable inventory. The ids line up with the
// physical actuation channels configured in internal/actuation.
var ingredients = []Ingredient{
	{ID: "ing1", Name: "Rice", Price: 40, Available: true, Category: "base"},
	{ID: "ing2", Name: "Tomato sachet", Price: 20, Available: true, Category: "veg"},
	{ID: "ing3", Name: "Onion", Price: 15, Available: true, Category: "veg"},
	{ID: "ing4", Name: "Oil", Price: 10, Available: true, Category: "oil"},
	{ID: "ing5", Name: "Dal", Price: 35, Available: true, Category: "protein"},
	{ID: "ing6", Name: "Spices", Price: 10, Available: true, Category: "spice"},
}

type InMemoryRepository struct {
	foods []Food
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		foods: []Food{
			{
				ID:          "1",
				Name:        "Tomato Rice",
				Description: "Rice with tomato and spices",
				Image:       "🍅",
				Ingredients: pick("ing1", "ing2", "ing4", "ing6"),
			},
			{
				ID:          "2",
				Name:        "Dal Rice",
				Description: "Dal served with rice",
				Image:       "🍛",
				Ingredients: pick("ing1", "ing5", "ing4", "ing6"),
			},
			{
				ID:          "3",
				Name:        "Veg Rice",
				Description: "Rice with onion and tomato",
				Image:       "🥗",
				Ingredients: pick("ing1", "ing2", "ing3", "ing4", "ing6"),
			},
			{
				ID:          "4",
				Name:        "Plain Dal",
				Description: "Dal with spices",
				Image:       "🥣",
				Ingredients: pick("ing5", "ing4", "ing6"),
			},
		},
	}
}

func (r *InMemoryRepository) ListFoods() ([]Food, error) {
	return r.foods, nil
}

func (r *InMemoryRepository) GetFood(id string) (*Food, error) {
	for i := range r.foods {
		if r.foods[i].ID == id {
			return &r.foods[i], nil
		}
	}
	return nil, errors.New("food not found")
}

// pick selects from the inventory in inventory order, not argument order,
// so every food lists its ingredients the same way the menu does.
func pick(ids ...string) []Ingredient {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []Ingredient
	for _, ing := range ingredients {
		if wanted[ing.ID] {
			out = append(out, ing)
		}
	}
	return out
}
