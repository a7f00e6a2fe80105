package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jchantrell/displayfmt/internal/datefmt"
)

// ErrUnknownKind is returned for a formatter kind that is not supported
var ErrUnknownKind = errors.New("unknown format kind")

// Kind selects which display transformation is applied to a value
type Kind string

const (
	KindDate     Kind = "date"
	KindShort    Kind = "short"
	KindFullTime Kind = "fulltime"
	KindDecimal  Kind = "decimal"
	KindCompact  Kind = "compact"
)

var kinds = []Kind{KindDate, KindShort, KindFullTime, KindDecimal, KindCompact}

// Kinds lists the supported kinds
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind validates a kind name
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// KindForLayout maps a date layout onto the kind that renders it
func KindForLayout(l datefmt.Layout) Kind {
	switch l {
	case datefmt.LayoutShort:
		return KindShort
	case datefmt.LayoutFullTime:
		return KindFullTime
	}
	return KindDate
}

// layout returns the date layout for date kinds
func (k Kind) layout() (datefmt.Layout, bool) {
	switch k {
	case KindDate:
		return datefmt.LayoutFull, true
	case KindShort:
		return datefmt.LayoutShort, true
	case KindFullTime:
		return datefmt.LayoutFullTime, true
	}
	return 0, false
}
