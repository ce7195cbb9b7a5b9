package product

import "context"

// Service defines read operations for the product domain.
type Service interface {
	// List returns up to limit products as normalized raw documents, filtered
	// by category when one is given.
	List(ctx context.Context, limit int64, category string) ([]map[string]interface{}, error)
}
