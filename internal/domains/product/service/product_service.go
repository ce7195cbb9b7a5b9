package service

import (
	"context"

	"freedaiy-backend/internal/domains/product"
	"freedaiy-backend/internal/infrastructure/database"
)

type productService struct {
	store database.Store
}

// NewProductService creates a new product service instance
func NewProductService(store database.Store) product.Service {
	return &productService{store: store}
}

func (s *productService) List(ctx context.Context, limit int64, category string) ([]map[string]interface{}, error) {
	var filter map[string]interface{}
	if category != "" {
		filter = map[string]interface{}{"category": category}
	}

	return s.store.Query(ctx, product.Collection, filter, limit)
}
