package database

import (
	"errors"
	"fmt"
)

// StoreError định nghĩa base error cho store layer
// The code set is closed: callers branch on kind, not on message text.
type StoreError struct {
	Code    string // Error code duy nhất (VD: "STORE_UNAVAILABLE")
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *StoreError) Unwrap() error {
	return e.Err
}

// ============================================
// STORE ERROR DEFINITIONS
// ============================================

// ErrStoreUnavailable - store không được cấu hình hoặc không kết nối được
var ErrStoreUnavailable = &StoreError{
	Code:    "STORE_UNAVAILABLE",
	Message: "Document store is not configured or not reachable",
}

// NewStoreUnavailable wraps a connection-level failure.
func NewStoreUnavailable(err error) *StoreError {
	return &StoreError{
		Code:    "STORE_UNAVAILABLE",
		Message: "Document store is not configured or not reachable",
		Err:     err,
	}
}

// NewStoreQueryError wraps a query the store rejected.
func NewStoreQueryError(err error) *StoreError {
	return &StoreError{
		Code:    "STORE_QUERY_ERROR",
		Message: "Document store rejected the query",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

// IsStoreUnavailable kiểm tra có phải "store unavailable" error
func IsStoreUnavailable(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Code == "STORE_UNAVAILABLE"
}

// IsStoreQueryError kiểm tra có phải "query rejected" error
func IsStoreQueryError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Code == "STORE_QUERY_ERROR"
}

// IsStoreError kiểm tra có phải StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
