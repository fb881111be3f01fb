package catalog

// Repository defines read access to the food catalog
type Repository interface {

	// List all foods in menu order
	ListFoods() ([]Food, error)

	// Fetch a single food by id
	GetFood(id string) (*Food, error)
}
