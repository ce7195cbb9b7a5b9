package lead

import "context"

// Service defines business logic for the lead domain.
type Service interface {
	// Create validates the request and appends one lead document, returning
	// the store-generated identifier. Fails with validation.Errors before the
	// store is touched, or with a store error from the adapter.
	Create(ctx context.Context, req *CreateLeadRequest) (string, error)
}
