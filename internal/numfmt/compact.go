package numfmt

import (
	"math"
	"strconv"
)

// MinCompact is the largest value that is never abbreviated
const MinCompact = 999

// Suffix is the unit appended to a compacted number
type Suffix string

const (
	SuffixNone Suffix = ""
	SuffixKilo Suffix = "k"
	SuffixMega Suffix = "M"
	SuffixGiga Suffix = "G"
)

var compactSteps = []struct {
	unit   float64
	suffix Suffix
}{
	{1e9, SuffixGiga},
	{1e6, SuffixMega},
	{1e3, SuffixKilo},
}

// MinCompactNumber returns MinCompact
func MinCompactNumber() float64 {
	return MinCompact
}

// Compact scales num down to the largest unit it reaches and rounds it to a
// whole number, half away from zero. Values below 1000, NaN and infinities
// are returned unchanged with SuffixNone.
//
// Rounding can carry into the next unit's range (999500 gives 1000 k); the
// unit is picked before rounding and is not promoted.
func Compact(num float64) (float64, Suffix) {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return num, SuffixNone
	}
	for _, step := range compactSteps {
		if num >= step.unit {
			return math.Round(num / step.unit), step.suffix
		}
	}
	return num, SuffixNone
}

// ToCompact abbreviates num, e.g. 1500000 becomes "2M". Values that are not
// compacted are rendered with FloatToDecimal.
func ToCompact(num float64) string {
	v, suffix := Compact(num)
	if suffix == SuffixNone {
		return FloatToDecimal(num)
	}
	return strconv.FormatFloat(v, 'f', 0, 64) + string(suffix)
}
