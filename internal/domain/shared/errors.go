package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Fit-related errors

type FitError struct {
	*DomainError
}

func NewFitError(message string) *FitError {
	return &FitError{DomainError: &DomainError{Message: message}}
}

type FitNotFoundError struct {
	*FitError
	FitID string
}

func NewFitNotFoundError(fitID string) *FitNotFoundError {
	return &FitNotFoundError{
		FitError: NewFitError(fmt.Sprintf("fit %s not found", fitID)),
		FitID:    fitID,
	}
}

type InvalidFitDataError struct {
	*FitError
}

func NewInvalidFitDataError(message string) *InvalidFitDataError {
	return &InvalidFitDataError{FitError: NewFitError(message)}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
