package service

import "shop-service/internal/entity"

var defaultCategories = []entity.Category{
	{
		Key:  "clothing",
		Name: "Clothing",
		Products: []entity.Product{
			{ID: 1, Name: "T-shirt", Price: 20, Description: "A good T-shirt"},
			{ID: 2, Name: "Jeans", Price: 50, Description: "Great jeans"},
		},
	},
	{
		Key:  "shoes",
		Name: "Shoes",
		Products: []entity.Product{
			{ID: 3, Name: "Sneakers", Price: 70, Description: "Comfortable sneakers"},
			{ID: 4, Name: "Boots", Price: 100, Description: "Beautiful boots"},
		},
	},
}

// CatalogService serves a fixed, read-only catalog held in memory.
type CatalogService struct {
	categories []entity.Category
}

func NewCatalogService() *CatalogService {
	return &CatalogService{categories: defaultCategories}
}

// Categories returns every category in display order.
func (s *CatalogService) Categories() []entity.Category {
	out := make([]entity.Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = copyCategory(c)
	}
	return out
}

func (s *CatalogService) Category(key string) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.Key == key {
			cp := copyCategory(c)
			return &cp, nil
		}
	}
	return nil, entity.ErrNotFound
}

// Product looks the id up across all categories.
func (s *CatalogService) Product(id int) (*entity.Product, error) {
	for _, c := range s.categories {
		for _, p := range c.Products {
			if p.ID == id {
				product := p
				return &product, nil
			}
		}
	}
	return nil, entity.ErrNotFound
}

func copyCategory(c entity.Category) entity.Category {
	c.Products = append([]entity.Product(nil), c.Products...)
	return c
}
