// Package render applies the date and number formatters to loosely typed
// values coming from the command line, input files and database rows.
package render

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jchantrell/displayfmt/internal/datefmt"
	"github.com/jchantrell/displayfmt/internal/numfmt"
	"github.com/sourcegraph/conc/iter"
)

// ErrNotNumber is returned when a value given to a number kind is not numeric
var ErrNotNumber = errors.New("value is not a number")

// Formatter renders values of any supported kind
type Formatter struct {
	Offsets datefmt.Offsets
}

// NewFormatter creates a formatter that shifts dates by the given offsets
func NewFormatter(offsets datefmt.Offsets) *Formatter {
	return &Formatter{Offsets: offsets}
}

// Format renders raw according to kind. Nil and empty values render as an
// empty string without error.
func (f *Formatter) Format(kind Kind, raw any) (string, error) {
	if l, ok := kind.layout(); ok {
		return datefmt.Extract(raw, l, f.Offsets)
	}

	switch kind {
	case KindDecimal:
		return decimal(raw), nil
	case KindCompact:
		n, ok, err := toFloat(raw)
		if err != nil || !ok {
			return "", err
		}
		return numfmt.ToCompact(n), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

func decimal(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return numfmt.ToDecimalString(v)
	case []byte:
		return numfmt.ToDecimalString(string(v))
	case float64:
		return numfmt.FloatToDecimal(v)
	case float32:
		return numfmt.FloatToDecimal(float64(v))
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	}
	return numfmt.ToDecimalString(fmt.Sprint(raw))
}

func toFloat(raw any) (float64, bool, error) {
	switch v := raw.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case []byte:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	}
	return 0, false, fmt.Errorf("%w: unsupported type %T", ErrNotNumber, raw)
}

func parseFloat(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return n, true, nil
		}
		return 0, false, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return n, true, nil
}

// Result is the outcome of formatting one input value
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Err    error  `json:"-" yaml:"-"`
}

// FormatAll formats every value with kind using up to workers goroutines.
// Results keep the order of values. Once ctx is cancelled the remaining
// values are not formatted and carry ctx's error. onDone, if not nil, is
// called concurrently after each value.
func (f *Formatter) FormatAll(ctx context.Context, kind Kind, values []string, workers int, onDone func()) []Result {
	if workers < 1 {
		workers = 1
	}

	mapper := iter.Mapper[string, Result]{MaxGoroutines: workers}
	return mapper.Map(values, func(v *string) Result {
		res := Result{Input: *v}
		if onDone != nil {
			defer onDone()
		}
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		res.Output, res.Err = f.Format(kind, *v)
		return res
	})
}
