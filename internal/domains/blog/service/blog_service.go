package service

import (
	"context"

	"freedaiy-backend/internal/domains/blog"
	"freedaiy-backend/internal/infrastructure/database"
)

type blogService struct {
	store database.Store
}

// NewBlogService creates a new blog service instance
func NewBlogService(store database.Store) blog.Service {
	return &blogService{store: store}
}

func (s *blogService) List(ctx context.Context, limit int64) ([]map[string]interface{}, error) {
	return s.store.Query(ctx, blog.Collection, nil, limit)
}
