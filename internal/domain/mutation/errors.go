package mutation

import (
	"fmt"

	"github.com/solrange/fitsim/internal/domain/shared"
)

// ValidationErrorKind distinguishes the user-facing validation failures so
// callers can localize them.
type ValidationErrorKind string

const (
	// KindInvalidFormat means the input text is not a signed decimal.
	KindInvalidFormat ValidationErrorKind = "INVALID_FORMAT"

	// KindOutOfRange means the multiplier falls outside the attribute's
	// mutaplasmid bounds.
	KindOutOfRange ValidationErrorKind = "OUT_OF_RANGE"
)

// ValidationError blocks a mutation edit. It never clamps and never crashes.
type ValidationError struct {
	*shared.DomainError
	Kind        ValidationErrorKind
	AttributeID int64
}

// NewInvalidFormatError reports malformed numeric input text.
func NewInvalidFormatError(text string) *ValidationError {
	return &ValidationError{
		DomainError: shared.NewDomainError(fmt.Sprintf("invalid numeric input: %q", text)),
		Kind:        KindInvalidFormat,
	}
}

// NewOutOfRangeError reports a multiplier outside the attribute's bounds.
func NewOutOfRangeError(attrID int64, multiplier, min, max float64) *ValidationError {
	return &ValidationError{
		DomainError: shared.NewDomainError(fmt.Sprintf(
			"multiplier %.4f out of range [%.4f, %.4f] for attribute %d",
			multiplier, min, max, attrID)),
		Kind:        KindOutOfRange,
		AttributeID: attrID,
	}
}

// MutationStateError reports an operation against the wrong lifecycle state.
type MutationStateError struct {
	*shared.DomainError
}

// NewNoMutaplasmidError reports a value edit without a selected mutaplasmid.
func NewNoMutaplasmidError() *MutationStateError {
	return &MutationStateError{
		DomainError: shared.NewDomainError("no mutaplasmid selected"),
	}
}

// NewUnknownAttributeError reports an attribute id outside the bounds table.
func NewUnknownAttributeError(attrID int64) *MutationStateError {
	return &MutationStateError{
		DomainError: shared.NewDomainError(fmt.Sprintf("attribute %d is not mutation-eligible", attrID)),
	}
}
