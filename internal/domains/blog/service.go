package blog

import "context"

// Service defines read operations for the blog domain.
type Service interface {
	// List returns up to limit posts as normalized raw documents, preserving
	// whatever fields out-of-band authors stored.
	List(ctx context.Context, limit int64) ([]map[string]interface{}, error)
}
