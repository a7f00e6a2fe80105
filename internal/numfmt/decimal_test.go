package numfmt

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimalString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "positive exponent", input: "1.5e3", expected: "1500"},
		{name: "negative exponent", input: "1.5e-3", expected: "0.0015"},
		{name: "negative value", input: "-2.5e2", expected: "-250"},
		{name: "negative value and exponent", input: "-2.5e-2", expected: "-0.025"},
		{name: "explicit plus signs", input: "+1e+3", expected: "1000"},
		{name: "upper case marker", input: "7E2", expected: "700"},
		{name: "integer coefficient", input: "1e-7", expected: "0.0000001"},
		{name: "zero exponent keeps fraction", input: "1.25e0", expected: "1.25"},
		{name: "fraction longer than exponent", input: "1.2345e2", expected: "123.45"},
		{name: "fraction equal to exponent", input: "1.25e2", expected: "125"},
		{name: "unnormalised coefficient", input: "15e-3", expected: "0.015"},
		{name: "unnormalised large coefficient", input: "123.4e1", expected: "1234"},
		{name: "trailing dot", input: "2.e2", expected: "200"},
		{name: "leading zeros", input: "00.5e1", expected: "5"},
		{name: "trailing fraction zeros", input: "1.500e1", expected: "15"},
		{name: "zero", input: "0e5", expected: "0"},
		{name: "negative zero", input: "-0.0e3", expected: "0"},
		{name: "large exponent", input: "1e21", expected: "1000000000000000000000"},
		{name: "surrounding whitespace", input: " 1.5e3 ", expected: "1500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDecimalString(tt.input))
		})
	}
}

func TestToDecimalStringPassThrough(t *testing.T) {
	for _, input := range []string{"42", "-3.14", "", "abc", "1.5e", "e10", "1e999999999999", "1.5e3x"} {
		assert.Equal(t, input, ToDecimalString(input), "input %q", input)
	}
}

func TestToDecimalStringPreservesValue(t *testing.T) {
	values := []float64{1.5e-3, 6.02214076e23, -1.602176634e-19, 12345.678e10, 9.99e-9, 1e-300}

	for _, v := range values {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		out := ToDecimalString(s)
		assert.NotContains(t, out, "e")

		parsed, err := strconv.ParseFloat(out, 64)
		require.NoError(t, err)
		assert.Equal(t, v, parsed, "round trip of %s via %s", s, out)
	}
}

func TestIsScientific(t *testing.T) {
	assert.True(t, IsScientific("1.5e3"))
	assert.True(t, IsScientific("-2E-2"))
	assert.False(t, IsScientific("1500"))
	assert.False(t, IsScientific("1.5"))
}

func TestFloatToDecimal(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0"},
		{input: math.Copysign(0, -1), expected: "0"},
		{input: 42, expected: "42"},
		{input: 999, expected: "999"},
		{input: -250, expected: "-250"},
		{input: 0.1, expected: "0.1"},
		{input: 1.5e-7, expected: "0.00000015"},
		{input: 2.5e22, expected: "25000000000000000000000"},
		{input: math.NaN(), expected: "NaN"},
		{input: math.Inf(1), expected: "+Inf"},
		{input: math.Inf(-1), expected: "-Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FloatToDecimal(tt.input))
	}
}
