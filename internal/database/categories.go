package database

import "github.com/ericoliveiras/creative-store/internal/model"

// ListCategories returns every category in insertion order.
func (s *MemStorage) ListCategories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]model.Category, 0, len(s.categories))
	for _, id := range sortedKeys(s.categories) {
		categories = append(categories, s.categories[id])
	}
	return categories
}

func (s *MemStorage) GetCategory(id uint) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	return category, ok
}

// GetCategoryBySlug returns the first category whose slug matches exactly.
func (s *MemStorage) GetCategoryBySlug(slug string) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedKeys(s.categories) {
		if category := s.categories[id]; category.Slug == slug {
			return category, true
		}
	}
	return model.Category{}, false
}

// CreateCategory stores the category under the next id. Slugs are not
// checked for uniqueness.
func (s *MemStorage) CreateCategory(data model.NewCategory) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertCategory(data)
}

func (s *MemStorage) insertCategory(data model.NewCategory) model.Category {
	category := model.Category{
		ID:          s.nextCategoryID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		ImageURL:    data.ImageURL,
	}
	s.nextCategoryID++
	s.categories[category.ID] = category
	return category
}
