// /internal/model/category.go
package model

// Category groups products. Slug is the external lookup key.
type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type NewCategory struct {
	Name        string
	Slug        string
	Description string
	ImageURL    string
}
