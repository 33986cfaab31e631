// Package errors provides standardized error handling for the z-units
// library. It includes error classification, standard error variables,
// and helper functions for consistent error wrapping and classification
// across the unit, quantity, config and catalog packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors caused by invalid definitions,
	// registrations or configuration input
	ErrorInvalid ErrorClass = iota
	// ErrorNotFound represents lookup misses (unknown symbol, no family)
	ErrorNotFound
	// ErrorDomain represents runtime contract violations during
	// computation (missing value, zero dynamic factor, kind mismatch)
	ErrorDomain
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorNotFound:
		return "not_found"
	case ErrorDomain:
		return "domain"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Unit definition errors
	ErrInvalidUnit = errors.New("invalid unit definition")

	// Registry errors
	ErrUnitNotFound      = errors.New("unit not found")
	ErrDuplicateSymbol   = errors.New("unit symbol already registered")
	ErrDuplicateBaseUnit = errors.New("base unit already set")

	// Quantity errors
	ErrNoValue      = errors.New("quantity has no value")
	ErrZeroFactor   = errors.New("conversion factor resolved to zero")
	ErrKindMismatch = errors.New("quantity kinds do not match")

	// Configuration errors
	ErrInvalidConfigValue = errors.New("invalid configuration value")

	// Conversion errors
	ErrNoMatchingFamily = errors.New("no unit family contains both symbols")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to an invalid definition,
// registration or configuration input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidUnit) ||
		errors.Is(err, ErrDuplicateSymbol) ||
		errors.Is(err, ErrDuplicateBaseUnit) ||
		errors.Is(err, ErrInvalidConfigValue)
}

// IsNotFound checks if an error is a lookup miss
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorNotFound
	}

	return errors.Is(err, ErrUnitNotFound) ||
		errors.Is(err, ErrNoMatchingFamily)
}

// IsDomain checks if an error is a runtime computation contract violation
func IsDomain(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorDomain
	}

	return errors.Is(err, ErrNoValue) ||
		errors.Is(err, ErrZeroFactor) ||
		errors.Is(err, ErrKindMismatch)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsNotFound(err) {
		return ErrorNotFound
	}
	if IsDomain(err) {
		return ErrorDomain
	}

	// Everything this library produces that is neither a lookup miss
	// nor a computation failure is bad input of some form.
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid(), WrapNotFound(), or WrapDomain() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid input with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapNotFound wraps an error as a lookup miss with context
func WrapNotFound(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorNotFound, wrappedErr, component, method, wrappedErr.Error())
}

// WrapDomain wraps an error as a computation contract violation with context
func WrapDomain(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorDomain, wrappedErr, component, method, wrappedErr.Error())
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers depending on this package don't also need
// the standard library errors package for sentinel checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
