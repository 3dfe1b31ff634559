package services

// CategoryService maintains the flat list of user-entered category names
// used for UI suggestions. The list is persisted independently of folders
// and notes and has no foreign-key relationship with either.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new category suggestion service
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Suggestions returns the remembered names in the order they were entered.
func (cs *CategoryService) Suggestions() ([]string, error) {
	return cs.repo.GetCustomCategories()
}

// Remember adds a name to the suggestion list. Already-known names are kept
// in place; the list never holds duplicates.
func (cs *CategoryService) Remember(name string) error {
	return cs.repo.SaveCustomCategory(name)
}
