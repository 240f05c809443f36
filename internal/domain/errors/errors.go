// Package errors defines the application-level error taxonomy shared by the
// usecases and the HTTP delivery.
package errors

import (
	"net/http"

	"reunion/internal/errors"
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
	// Cart-related errors
	ErrCartLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"No cart line at that position",
		"",
	)

	ErrQuantityNotPositive = NewBaseError(
		http.StatusBadRequest,
		"QUANTITY_NOT_POSITIVE",
		"Quantity must be a positive integer",
		"",
	)

	ErrNameTagDirectAdd = NewBaseError(
		http.StatusBadRequest,
		"NAME_TAG_DIRECT_ADD",
		"Name tags are added by confirming a slot, not as plain items",
		"",
	)

	ErrNameTagLineImmutable = NewBaseError(
		http.StatusBadRequest,
		"NAME_TAG_LINE_IMMUTABLE",
		"A confirmed name tag can only be removed, not edited",
		"",
	)

	ErrNameTagIncomplete = NewBaseError(
		http.StatusBadRequest,
		"NAME_TAG_INCOMPLETE",
		"Name tag needs both a display name and a class",
		"",
	)

	ErrNameTagSlotUnavailable = NewBaseError(
		http.StatusBadRequest,
		"NAME_TAG_SLOT_UNAVAILABLE",
		"No t-shirt in the cart covers that name tag slot",
		"",
	)

	ErrNameTagSlotTaken = NewBaseError(
		http.StatusConflict,
		"NAME_TAG_SLOT_TAKEN",
		"That name tag slot is already in the cart",
		"",
	)

	// Payment proof errors
	ErrProofNotImage = NewBaseError(
		http.StatusBadRequest,
		"PROOF_NOT_IMAGE",
		"Payment proof must be an image file",
		"",
	)

	ErrProofTooLarge = NewBaseError(
		http.StatusBadRequest,
		"PROOF_TOO_LARGE",
		"Payment proof must be 5 MiB or smaller",
		"",
	)

	// Checkout errors
	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"A checkout is already running for this session",
		"",
	)

	ErrNothingToSubmit = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_TO_SUBMIT",
		"The session has no registration form to submit",
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

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// CheckoutStageError represents a fatal failure of one checkout stage,
// implementing the AppError interface.
type CheckoutStageError struct {
	stage string
	err   error
}

// NewCheckoutStageError wraps a stage failure with the stage that produced it.
func NewCheckoutStageError(stage string, err error) AppError {
	return &CheckoutStageError{
		stage: stage,
		err:   err,
	}
}

// Error implements the error interface
func (e *CheckoutStageError) Error() string {
	return errors.Wrapf(e.err, "checkout stage %q failed", e.stage).Error()
}

// Unwrap exposes the underlying stage failure.
func (e *CheckoutStageError) Unwrap() error {
	return e.err
}

// Stage names the stage that failed.
func (e *CheckoutStageError) Stage() string {
	return e.stage
}

// HTTPCode returns the HTTP status code
func (e *CheckoutStageError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *CheckoutStageError) ErrorCode() string {
	return "CHECKOUT_STAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *CheckoutStageError) Message() string {
	return "Saving the registration failed; nothing was lost, please retry"
}

// Details returns detailed error information
func (e *CheckoutStageError) Details() string {
	return e.Error()
}
