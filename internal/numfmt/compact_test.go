package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCompact(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "below threshold", input: 999, expected: "999"},
		{name: "fraction below threshold", input: 12.5, expected: "12.5"},
		{name: "negative", input: -5000, expected: "-5000"},
		{name: "one thousand", input: 1000, expected: "1k"},
		{name: "rounds down", input: 1499, expected: "1k"},
		{name: "rounds half up", input: 2500, expected: "3k"},
		{name: "unit not promoted", input: 999999, expected: "1000k"},
		{name: "one and a half million", input: 1500000, expected: "2M"},
		{name: "two billion", input: 2000000000, expected: "2G"},
		{name: "above giga", input: 1.234e12, expected: "1234G"},
		{name: "NaN", input: math.NaN(), expected: "NaN"},
		{name: "infinity", input: math.Inf(1), expected: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCompact(tt.input))
		})
	}
}

func TestCompact(t *testing.T) {
	v, suffix := Compact(1500000)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, SuffixMega, suffix)

	v, suffix = Compact(3200)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, SuffixKilo, suffix)

	v, suffix = Compact(7.6e9)
	assert.Equal(t, 8.0, v)
	assert.Equal(t, SuffixGiga, suffix)
}

func TestCompactBelowThresholdUnchanged(t *testing.T) {
	assert.Equal(t, 999.0, MinCompactNumber())

	for _, n := range []float64{MinCompact, 998.5, 500, 1, 0, -1, -1e12, 999.999} {
		v, suffix := Compact(n)
		assert.Equal(t, n, v)
		assert.Equal(t, SuffixNone, suffix)
	}
}
