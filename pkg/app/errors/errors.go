// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
	"unicode/utf8"
)

// MaxDetailLength bounds upstream diagnostic bodies carried by a ServiceError.
const MaxDetailLength = 500

// Category defines error category
type Category int

const (
	// CategoryNoError is used when a call completed without error.
	CategoryNoError Category = iota
	// CategoryDataError The client sends some invalid data in the request,
	// for example, missing or incorrect content in the payload or parameters.
	// Could also represent a generic client error.
	CategoryDataError
	// CategoryUnauthorized The client did not present a valid credential
	CategoryUnauthorized
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	// or that it does not own
	CategoryResourceNotFound
	// CategoryNotSupported The requested route or functionality is not supported
	CategoryNotSupported
	// CategoryInvalidState The resource exists but is in the wrong lifecycle state for the operation
	CategoryInvalidState
	// CategoryDataConflict The request raced with another write or reuses a key with different data
	CategoryDataConflict
	// CategoryDependencyFailure A dependent service is throwing errors
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryUnavailable A dependency required by the operation is not configured
	CategoryUnavailable
	// CategoryConnectionTimeout Connection to a dependent service timing out
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryInvalidState:
		return "CategoryInvalidState"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryUnavailable:
		return "CategoryUnavailable"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// Kind returns the machine-checkable error kind exposed to API clients.
func (c Category) Kind() string {
	switch c {
	case CategoryDataError:
		return "invalid_input"
	case CategoryUnauthorized:
		return "unauthenticated"
	case CategoryResourceNotFound:
		return "not_found"
	case CategoryNotSupported:
		return "unsupported_route"
	case CategoryInvalidState:
		return "invalid_state"
	case CategoryDataConflict:
		return "conflict"
	case CategoryDependencyFailure, CategoryConnectionTimeout:
		return "upstream_failure"
	case CategoryUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error

	// Reason is an optional specific code, e.g. "missing_evm_wallet".
	Reason string
	// Detail carries truncated upstream diagnostics.
	Detail string
	// CurrentStatus and RequiredStatus are set for CategoryInvalidState.
	CurrentStatus  string
	RequiredStatus []string
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// As returns the ServiceError carried by err, if any.
func As(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// IsInternalError checks that provided error is a Internal system error
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure) {
		return false
	}
	return true
}

// Truncate shortens s to at most MaxDetailLength bytes without splitting a rune.
func Truncate(s string) string {
	if len(s) <= MaxDetailLength {
		return s
	}
	cut := MaxDetailLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
// the error message provided is returned to the user
// the err object provided is logged in logger
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found:" + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns  an error with category DataError
// the error message provided is returned to the user
// the error object provided is logged in logger
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request:" + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// InvalidInputError is a BadRequestError carrying a specific reason code.
func InvalidInputError(err error, reason, message string) error {
	if err == nil {
		err = errors.New("invalid input:" + reason)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Reason:   reason,
		Err:      err,
	}
}

// NotSupportedError returns  an error with category NotSupported
// the error message provided is returned to the user
// the error object provided is logged in logger
func NotSupportedError(err error, message string) error {
	if err == nil {
		err = errors.New("not supported:" + message)
	}
	return &ServiceError{
		Category: CategoryNotSupported,
		Message:  message,
		Err:      err,
	}
}

// InvalidStateError returns an error with category InvalidState echoing the
// current status and the statuses the operation requires.
func InvalidStateError(err error, message, current string, required ...string) error {
	if err == nil {
		err = errors.New("invalid state:" + current)
	}
	return &ServiceError{
		Category:       CategoryInvalidState,
		Message:        message,
		Err:            err,
		CurrentStatus:  current,
		RequiredStatus: required,
	}
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
// the error message provided is returned to the user
// the error object provided is logged in logger
func UnAuthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Message:  message,
		Err:      err,
	}
}

// ConflictError returns an error with category CategoryDataConflict
// the error message provided is returned to the user
// the error object provided is logged in logger
func ConflictError(err error, message string) error {
	if err == nil {
		err = errors.New("conflict")
	}
	return &ServiceError{
		Category: CategoryDataConflict,
		Message:  message,
		Err:      err,
	}
}

// DependencyFailureError returns an error with category CategoryDependencyFailure.
// detail is truncated to MaxDetailLength before it reaches the client.
func DependencyFailureError(err error, reason, message, detail string) error {
	if err == nil {
		err = errors.New("dependency failure:" + reason)
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Reason:   reason,
		Detail:   Truncate(detail),
		Err:      err,
	}
}

// UnavailableError returns an error with category CategoryUnavailable
func UnavailableError(err error, message string) error {
	if err == nil {
		err = errors.New("unavailable")
	}
	return &ServiceError{
		Category: CategoryUnavailable,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryNotSupported:
		return http.StatusBadRequest
	case CategoryInvalidState:
		return http.StatusBadRequest
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryGeneralError:
		return http.StatusInternalServerError
	case CategoryUnavailable:
		return http.StatusServiceUnavailable
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
