package mutation

import (
	"math"
	"regexp"
	"strconv"
)

// decimalPattern accepts a signed or unsigned decimal: "12", "-3.5", "+.25".
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ParsePercent parses user input text as a percentage. Returns an
// InvalidFormat validation error for anything that is not a plain signed
// decimal (scientific notation, stray characters, empty input).
func ParsePercent(text string) (float64, error) {
	if !decimalPattern.MatchString(text) {
		return 0, NewInvalidFormatError(text)
	}
	p, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, NewInvalidFormatError(text)
	}
	return p, nil
}

// PercentToMultiplier converts a percentage to the raw multiplier the
// domain stores: +15 → 1.15, -10 → 0.90.
func PercentToMultiplier(p float64) float64 {
	return p/100 + 1
}

// MultiplierToPercent converts a stored multiplier back to a display
// percentage, rounded to two decimals.
func MultiplierToPercent(multiplier float64) float64 {
	return math.Round((multiplier-1)*100*100) / 100
}

// ValidateInput parses percentage text and range-checks the resulting
// multiplier against the attribute's bounds. The comparison happens in
// multiplier space so the percentage conversion cannot compound rounding
// error into a spurious rejection.
func ValidateInput(attr *Attribute, text string) (float64, error) {
	p, err := ParsePercent(text)
	if err != nil {
		return 0, err
	}
	multiplier := PercentToMultiplier(p)
	if multiplier < attr.MinValue || multiplier > attr.MaxValue {
		return 0, NewOutOfRangeError(attr.ID, multiplier, attr.MinValue, attr.MaxValue)
	}
	return multiplier, nil
}
