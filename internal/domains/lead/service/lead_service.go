package service

import (
	"context"
	"time"

	"freedaiy-backend/internal/domains/lead"
	"freedaiy-backend/internal/infrastructure/database"
)

type leadService struct {
	store database.Store
}

// NewLeadService creates a new lead service instance
// Dependency injection pattern - receives store from container
func NewLeadService(store database.Store) lead.Service {
	return &leadService{store: store}
}

func (s *leadService) Create(ctx context.Context, req *lead.CreateLeadRequest) (string, error) {
	// Schema validation must reject the payload before any store operation
	if err := req.Validate(); err != nil {
		return "", err
	}

	doc := req.ToLead(time.Now().UTC())
	return s.store.Insert(ctx, lead.Collection, doc)
}
