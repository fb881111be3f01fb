package catalog

// Price sums the listed prices of the selected ingredient ids against the
// food's ingredient list. PURE business logic (no catalog lookups, no IO).
//
// Unknown or stale ids contribute 0, and a nil food prices to 0 regardless
// of the selection — pricing never fails.
func Price(food *Food, selectedIDs []string) int {
	if food == nil {
		return 0
	}

	total := 0
	for _, id := range selectedIDs {
		if ing := food.Ingredient(id); ing != nil {
			total += ing.Price
		}
	}

	return total
}
