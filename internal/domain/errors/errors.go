// Package errors defines the application error types shared by use cases
// and the HTTP delivery layer.
package errors

import (
	"net/http"

	"campuskart/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Signup / login errors. Invalid credentials deliberately answer 403,
	// matching the behavior clients already depend on.
	ErrBuyerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BUYER_ALREADY_EXISTS",
		"User already exists",
		"",
	)

	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"Admin already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error processing password",
		"",
	)

	// Catalog errors. Update/delete on another admin's item answers 404
	// with a distinct message, not 403: the ownership filter is part of
	// the lookup, so a foreign item is simply never found.
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	ErrItemUpdateNotOwned = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_OWNED",
		"Can't update, created by other admin",
		"",
	)

	ErrItemDeleteNotOwned = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_OWNED",
		"Can't delete, created by other admin",
		"",
	)

	ErrImageRequired = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REQUIRED",
		"No file uploaded",
		"",
	)

	ErrImageFormat = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_FORMAT",
		"Invalid file format. Only PNG and JPG are allowed",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"Error uploading image",
		"",
	)

	// Checkout errors. Both conflicts describe the same underlying
	// condition; the message depends on which existence check matched.
	ErrItemAlreadyPurchased = NewBaseError(
		http.StatusConflict,
		"ITEM_ALREADY_PURCHASED",
		"You have already purchased this item",
		"",
	)

	ErrItemAlreadySold = NewBaseError(
		http.StatusConflict,
		"ITEM_ALREADY_SOLD",
		"This item has already been sold to another user",
		"",
	)

	ErrPaymentIntentFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_INTENT_FAILED",
		"Error creating payment intent",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Error in order creation",
		"",
	)

	// Fulfillment errors.
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ORDER_OWNERSHIP_VIOLATION",
		"You can only update orders for your own items",
		"",
	)

	ErrInvalidPickupCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PICKUP_CODE",
		"Invalid pickup code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
