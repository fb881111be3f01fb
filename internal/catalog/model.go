package catalog

// Ingredient is a single dispensable component of a food item.
// Reference data only — never mutated by the ordering flow.
type Ingredient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Available bool   `json:"available"`
	Category  string `json:"category"`
}

// Food is a menu entry composed from a fixed set of ingredient options.
type Food struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Ingredient returns the ingredient with the given id, or nil if the
// food does not offer it.
func (f *Food) Ingredient(id string) *Ingredient {
	for i := range f.Ingredients {
		if f.Ingredients[i].ID == id {
			return &f.Ingredients[i]
		}
	}
	return nil
}

// GroupByCategory groups a food's ingredients by their category label,
// preserving the ingredient order inside each group.
func GroupByCategory(ingredients []Ingredient) map[string][]Ingredient {
	groups := make(map[string][]Ingredient)
	for _, ing := range ingredients {
		groups[ing.Category] = append(groups[ing.Category], ing)
	}
	return groups
}
