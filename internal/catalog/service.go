package catalog

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// List foods (menu screen)
// --------------------------------------------------
func (s *Service) ListFoods() ([]Food, error) {
	return s.repo.ListFoods()
}

// --------------------------------------------------
// Fetch one food (customization screen)
// --------------------------------------------------
func (s *Service) GetFood(id string) (*Food, error) {
	return s.repo.GetFood(id)
}
