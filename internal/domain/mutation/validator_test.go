package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/domain/mutation"
)

func TestParsePercent_AcceptsPlainDecimals(t *testing.T) {
	cases := map[string]float64{
		"12":    12,
		"-3.5":  -3.5,
		"+.25":  0.25,
		"0":     0,
		"-0.0":  0,
		"15.":   15,
		"+20.5": 20.5,
	}
	for text, want := range cases {
		got, err := mutation.ParsePercent(text)
		require.NoError(t, err, "input %q", text)
		assert.Equal(t, want, got, "input %q", text)
	}
}

func TestParsePercent_RejectsMalformedInput(t *testing.T) {
	for _, text := range []string{"", " ", "abc", "1e3", "1,5", "12%", "--5", "1.2.3", " 12", "12 "} {
		_, err := mutation.ParsePercent(text)

		var vErr *mutation.ValidationError
		require.ErrorAs(t, err, &vErr, "input %q", text)
		assert.Equal(t, mutation.KindInvalidFormat, vErr.Kind, "input %q", text)
	}
}

func TestPercentMultiplierRoundTrip(t *testing.T) {
	assert.InDelta(t, 1.15, mutation.PercentToMultiplier(15), 1e-12)
	assert.InDelta(t, 0.90, mutation.PercentToMultiplier(-10), 1e-12)
	assert.InDelta(t, 1.0, mutation.PercentToMultiplier(0), 1e-12)

	assert.Equal(t, 15.0, mutation.MultiplierToPercent(1.15))
	assert.Equal(t, -10.0, mutation.MultiplierToPercent(0.90))

	// Display rounding: two decimals.
	assert.Equal(t, 3.33, mutation.MultiplierToPercent(1.033333))
	assert.Equal(t, -6.67, mutation.MultiplierToPercent(0.933333))
}

func TestValidateInput_RangeCheckedInMultiplierSpace(t *testing.T) {
	attr := &mutation.Attribute{ID: 6, MinValue: 0.8, MaxValue: 1.2}

	multiplier, err := mutation.ValidateInput(attr, "20")
	require.NoError(t, err)
	assert.InDelta(t, 1.2, multiplier, 1e-12)

	multiplier, err = mutation.ValidateInput(attr, "-20")
	require.NoError(t, err)
	assert.InDelta(t, 0.8, multiplier, 1e-12)

	_, err = mutation.ValidateInput(attr, "20.01")
	var vErr *mutation.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, mutation.KindOutOfRange, vErr.Kind)
	assert.Equal(t, int64(6), vErr.AttributeID)
}

func TestValidateInput_FormatErrorBeforeRangeError(t *testing.T) {
	attr := &mutation.Attribute{ID: 6, MinValue: 0.8, MaxValue: 1.2}

	_, err := mutation.ValidateInput(attr, "1e99")

	var vErr *mutation.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, mutation.KindInvalidFormat, vErr.Kind)
}
