package datefmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned when a layout code or name is not recognised
var ErrUnknownLayout = errors.New("unknown date layout")

// Layout selects one of the fixed display layouts
type Layout int

const (
	// LayoutFull renders DD/MM/YYYY HH:MM:SS
	LayoutFull Layout = iota
	// LayoutShort renders DD/MM HH:MM
	LayoutShort
	// LayoutFullTime renders DD/MM HH:MM:SS
	LayoutFullTime
)

var layoutNames = map[Layout]string{
	LayoutFull:     "full",
	LayoutShort:    "short",
	LayoutFullTime: "fulltime",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Valid reports whether l is one of the defined layouts
func (l Layout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

// ParseLayoutCode converts a numeric layout code (0, 1 or 2) into a Layout
func ParseLayoutCode(code int) (Layout, error) {
	l := Layout(code)
	if !l.Valid() {
		return LayoutFull, fmt.Errorf("%w: code %d", ErrUnknownLayout, code)
	}
	return l, nil
}

// ParseLayout converts a layout name into a Layout. An empty name selects LayoutFull.
func ParseLayout(name string) (Layout, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LayoutFull, nil
	}
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return LayoutFull, fmt.Errorf("%w: %q (expected full, short or fulltime)", ErrUnknownLayout, name)
}
