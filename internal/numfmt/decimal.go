// Package numfmt formats numeric values for display: it expands scientific
// notation into plain decimals and abbreviates large magnitudes with k/M/G
// suffixes.
package numfmt

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxExponent bounds the zero padding ToDecimalString will produce. It is
// comfortably past the float64 range (about 1e308 down to 5e-324).
const maxExponent = 1100

var scientificPattern = regexp.MustCompile(`^([+-]?)(\d+)(?:\.(\d*))?[eE]([+-]?\d+)$`)

// IsScientific reports whether s is a number written in scientific notation
func IsScientific(s string) bool {
	return scientificPattern.MatchString(strings.TrimSpace(s))
}

// ToDecimalString rewrites a number in scientific notation as a plain decimal
// string with the same value, e.g. "1.5e-3" becomes "0.0015" and "-2.5e2"
// becomes "-250". Any other input is returned unchanged.
func ToDecimalString(s string) string {
	m := scientificPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}

	exp, err := strconv.Atoi(m[4])
	if err != nil || exp > maxExponent || exp < -maxExponent {
		return s
	}

	negative := m[1] == "-"
	whole, frac := m[2], m[3]
	digits := whole + frac

	// point is the position of the decimal point within digits once the
	// exponent is applied; it may fall outside digits on either side.
	point := len(whole) + exp

	var intPart, fracPart string
	switch {
	case point <= 0:
		intPart = "0"
		fracPart = strings.Repeat("0", -point) + digits
	case point >= len(digits):
		intPart = digits + strings.Repeat("0", point-len(digits))
	default:
		intPart, fracPart = digits[:point], digits[point:]
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart = strings.TrimRight(fracPart, "0")

	var b strings.Builder
	b.Grow(len(intPart) + len(fracPart) + 2)
	if negative && (intPart != "0" || fracPart != "") {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FloatToDecimal renders f as a plain decimal string using the shortest
// representation that round-trips. NaN and infinities pass through as
// "NaN", "+Inf" and "-Inf".
func FloatToDecimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ToDecimalString(strconv.FormatFloat(f, 'e', -1, 64))
}
