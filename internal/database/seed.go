// /internal/database/seed.go
package database

import (
	"log"

	"github.com/ericoliveiras/creative-store/internal/model"
)

func ptr[T any](v T) *T { return &v }

var seedCategories = []model.NewCategory{
	{Name: "Stationery", Slug: "stationery", Description: "Creative stationery and desk accessories", ImageURL: "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
	{Name: "Ceramics", Slug: "ceramics", Description: "Handmade pottery and ceramic crafts", ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
	{Name: "Home Decor", Slug: "home-decor", Description: "Artistic home decoration items", ImageURL: "https://images.unsplash.com/photo-1556228578-8c89e6adf883?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
	{Name: "Art Supplies", Slug: "art-supplies", Description: "Professional art and craft supplies", ImageURL: "https://images.unsplash.com/photo-1541961017774-22349e4a1262?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
}

var seedProducts = []model.NewProduct{
	{
		Name:          "Handcrafted Leather Notebook",
		Description:   "Premium leather notebook with handmade paper, perfect for journaling and creative writing.",
		Price:         "158.00",
		OriginalPrice: ptr("200.00"),
		ImageURL:      "https://images.unsplash.com/photo-1544378730-6f8b3cd0e0c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:    1,
		Stock:         25,
		IsNew:         ptr(true),
		IsOnSale:      ptr(true),
		Rating:        ptr("4.8"),
		ReviewCount:   ptr(24),
	},
	{
		Name:        "Hand-painted Ceramic Mug",
		Description: "Unique ceramic mug with artistic hand-painted patterns, making every tea time special.",
		Price:       "89.00",
		ImageURL:    "https://images.unsplash.com/photo-1544787219-7f47ccb76574?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  2,
		Stock:       30,
		Rating:      ptr("4.5"),
		ReviewCount: ptr(18),
	},
	{
		Name:        "Washi Tape Collection",
		Description: "Set of 12 beautiful washi tapes with various patterns, perfect for crafting and decoration.",
		Price:       "45.00",
		ImageURL:    "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  1,
		Stock:       50,
		IsHot:       ptr(true),
		Rating:      ptr("4.9"),
		ReviewCount: ptr(32),
	},
	{
		Name:        "Wooden Desk Organizer",
		Description: "Natural wood desk organizer with multiple compartments for a tidy workspace.",
		Price:       "128.00",
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  3,
		Stock:       15,
		Rating:      ptr("4.6"),
		ReviewCount: ptr(15),
	},
	{
		Name:        "Watercolor Paint Set",
		Description: "Professional watercolor paint set with 24 vibrant colors and brushes.",
		Price:       "85.00",
		ImageURL:    "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  4,
		Stock:       20,
		IsNew:       ptr(true),
		Rating:      ptr("4.7"),
		ReviewCount: ptr(28),
	},
	{
		Name:        "Ceramic Succulent Planter",
		Description: "Handmade ceramic planter perfect for small succulents and air plants.",
		Price:       "65.00",
		ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  2,
		Stock:       35,
		Rating:      ptr("4.4"),
		ReviewCount: ptr(22),
	},
	{
		Name:        "Vintage Fountain Pen",
		Description: "Classic fountain pen with smooth ink flow, ideal for calligraphy and writing.",
		Price:       "220.00",
		ImageURL:    "https://images.unsplash.com/photo-1544378730-6f8b3cd0e0c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  1,
		Stock:       10,
		Rating:      ptr("4.8"),
		ReviewCount: ptr(19),
	},
	{
		Name:        "Macramé Wall Hanging",
		Description: "Handwoven macramé wall decoration to add bohemian charm to any room.",
		Price:       "95.00",
		ImageURL:    "https://images.unsplash.com/photo-1556228578-8c89e6adf883?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
		CategoryID:  3,
		Stock:       18,
		IsHot:       ptr(true),
		Rating:      ptr("4.6"),
		ReviewCount: ptr(31),
	},
}

// seedCatalog loads the demo catalog into a freshly built store. It always
// inserts; there is no dedup or update-if-exists.
func seedCatalog(s *MemStorage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range seedCategories {
		s.insertCategory(c)
	}
	for _, p := range seedProducts {
		s.insertProduct(cloneNewProduct(p))
	}
	log.Printf("Seed catalog loaded: %d categories, %d products.", len(seedCategories), len(seedProducts))
}

// cloneNewProduct copies the optional fields so seeded products never share
// pointers across stores.
func cloneNewProduct(p model.NewProduct) model.NewProduct {
	p.OriginalPrice = clonePtr(p.OriginalPrice)
	p.IsNew = clonePtr(p.IsNew)
	p.IsHot = clonePtr(p.IsHot)
	p.IsOnSale = clonePtr(p.IsOnSale)
	p.Rating = clonePtr(p.Rating)
	p.ReviewCount = clonePtr(p.ReviewCount)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return ptr(*v)
}
