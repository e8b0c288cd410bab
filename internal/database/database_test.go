// /internal/database/database_test.go
package database

import (
	"testing"
	"time"

	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a clock that advances one minute per call.
func fakeClock() func() time.Time {
	t := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestNewMemStorageSeedsCatalog(t *testing.T) {
	s := NewMemStorage()

	categories := s.ListCategories()
	require.Len(t, categories, 4)
	assert.Equal(t, []string{"stationery", "ceramics", "home-decor", "art-supplies"},
		[]string{categories[0].Slug, categories[1].Slug, categories[2].Slug, categories[3].Slug})

	products := s.ListProducts(ProductFilter{})
	require.Len(t, products, 8)
	for i, p := range products {
		assert.Equal(t, uint(i+1), p.ID)
	}

	notebook := products[0]
	assert.Equal(t, "Handcrafted Leather Notebook", notebook.Name)
	assert.Equal(t, "158.00", notebook.Price)
	require.NotNil(t, notebook.OriginalPrice)
	assert.Equal(t, "200.00", *notebook.OriginalPrice)
	assert.Equal(t, 25, notebook.Stock)
	require.NotNil(t, notebook.IsNew)
	assert.True(t, *notebook.IsNew)
	assert.Nil(t, notebook.IsHot)
}

func TestSeedIsDeterministic(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }
	a := NewMemStorage(WithClock(clock))
	b := NewMemStorage(WithClock(clock))

	assert.Equal(t, a.ListCategories(), b.ListCategories())
	assert.Equal(t, a.ListProducts(ProductFilter{}), b.ListProducts(ProductFilter{}))
}

func TestSeededProductsDoNotSharePointers(t *testing.T) {
	a := NewMemStorage()
	b := NewMemStorage()

	pa, _ := a.GetProduct(1)
	pb, _ := b.GetProduct(1)
	*pa.Rating = "1.0"

	assert.Equal(t, "4.8", *pb.Rating)
	assert.Equal(t, "4.8", *seedProducts[0].Rating)
}

func TestWithoutSeed(t *testing.T) {
	s := NewMemStorage(WithoutSeed())

	assert.Empty(t, s.ListCategories())
	assert.Empty(t, s.ListProducts(ProductFilter{}))

	c := s.CreateCategory(model.NewCategory{Name: "Books", Slug: "books"})
	assert.Equal(t, uint(1), c.ID)
}

func TestCategories(t *testing.T) {
	s := NewMemStorage()

	c := s.CreateCategory(model.NewCategory{Name: "Textiles", Slug: "textiles", Description: "Woven goods"})
	assert.Equal(t, uint(5), c.ID)

	got, ok := s.GetCategoryBySlug("textiles")
	require.True(t, ok)
	assert.Equal(t, c, got)

	_, ok = s.GetCategoryBySlug("Textiles")
	assert.False(t, ok, "slug lookup is case-sensitive")

	_, ok = s.GetCategoryBySlug("missing")
	assert.False(t, ok)

	byID, ok := s.GetCategory(2)
	require.True(t, ok)
	assert.Equal(t, "ceramics", byID.Slug)
}

func TestGetCategoryBySlugReturnsFirstMatch(t *testing.T) {
	s := NewMemStorage(WithoutSeed())
	first := s.CreateCategory(model.NewCategory{Name: "A", Slug: "dup"})
	s.CreateCategory(model.NewCategory{Name: "B", Slug: "dup"})

	got, ok := s.GetCategoryBySlug("dup")
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
}

func TestIDsAreNeverReused(t *testing.T) {
	s := NewMemStorage()

	first := s.AddToCart(model.NewCartItem{SessionID: "s", ProductID: 1, Quantity: 1})
	s.RemoveFromCart(first.ID)
	second := s.AddToCart(model.NewCartItem{SessionID: "s", ProductID: 1, Quantity: 1})

	assert.Greater(t, second.ID, first.ID)
}
