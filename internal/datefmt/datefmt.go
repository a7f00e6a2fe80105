// Package datefmt renders server timestamps as local display strings.
//
// Raw timestamps carry no zone. They are taken to be the server's wall clock,
// which sits at a fixed minute offset from UTC, and are shifted to the local
// wall clock before rendering.
package datefmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableTimestamp is returned when a raw value cannot be read as a timestamp
var ErrUnparseableTimestamp = errors.New("unparseable timestamp")

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Render formats t using the layout. Fields are read in UTC.
func Render(t time.Time, l Layout) string {
	t = t.UTC()
	switch l {
	case LayoutFull:
		return fmt.Sprintf("%02d/%02d/%d %02d:%02d:%02d",
			t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
	case LayoutShort:
		return fmt.Sprintf("%02d/%02d %02d:%02d",
			t.Day(), int(t.Month()), t.Hour(), t.Minute())
	case LayoutFullTime:
		return fmt.Sprintf("%02d/%02d %02d:%02d:%02d",
			t.Day(), int(t.Month()), t.Hour(), t.Minute(), t.Second())
	}
	return ""
}

// Parse reads a raw timestamp. It reports ok=false with a nil error when raw
// holds no value (nil, a nil pointer or an empty string).
//
// Numbers and numeric strings are Unix epoch milliseconds. Strings without a
// zone are read as UTC fields; strings with a zone keep their instant.
func Parse(raw any) (t time.Time, ok bool, err error) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return v.UTC(), true, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, false, nil
		}
		return v.UTC(), true, nil
	case string:
		return parseString(v)
	case *string:
		if v == nil {
			return time.Time{}, false, nil
		}
		return parseString(*v)
	case []byte:
		return parseString(string(v))
	case json.Number:
		return parseString(v.String())
	case int:
		return fromMillis(int64(v)), true, nil
	case int32:
		return fromMillis(int64(v)), true, nil
	case int64:
		return fromMillis(v), true, nil
	case uint32:
		return fromMillis(int64(v)), true, nil
	case uint64:
		if v > math.MaxInt64 {
			return time.Time{}, false, fmt.Errorf("%w: %d out of range", ErrUnparseableTimestamp, v)
		}
		return fromMillis(int64(v)), true, nil
	case float64:
		return fromFloatMillis(v)
	case float32:
		return fromFloatMillis(float64(v))
	}
	return time.Time{}, false, fmt.Errorf("%w: unsupported type %T", ErrUnparseableTimestamp, raw)
}

func parseString(s string) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	trimmed := strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return fromMillis(ms), true, nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return fromFloatMillis(f)
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrUnparseableTimestamp, s)
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func fromFloatMillis(f float64) (time.Time, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return time.Time{}, false, fmt.Errorf("%w: %v", ErrUnparseableTimestamp, f)
	}
	return fromMillis(int64(f)), true, nil
}

// Extract parses raw, shifts it by the offsets and renders it with the layout.
// Empty input yields an empty string and no error.
func Extract(raw any, l Layout, o Offsets) (string, error) {
	t, ok, err := Parse(raw)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return Render(Adjust(t, o), l), nil
}

func offsetsFor(serverOffset []int) Offsets {
	o := DefaultOffsets()
	if len(serverOffset) > 0 {
		o.Server = serverOffset[0]
	}
	return o
}

// ExtractDateString renders raw as DD/MM/YYYY HH:MM:SS in local time. The
// optional argument overrides DefaultServerOffset.
func ExtractDateString(raw any, serverOffset ...int) (string, error) {
	return Extract(raw, LayoutFull, offsetsFor(serverOffset))
}

// ExtractShortString renders raw as DD/MM HH:MM in local time
func ExtractShortString(raw any, serverOffset ...int) (string, error) {
	return Extract(raw, LayoutShort, offsetsFor(serverOffset))
}

// ExtractFullTimeString renders raw as DD/MM HH:MM:SS in local time
func ExtractFullTimeString(raw any, serverOffset ...int) (string, error) {
	return Extract(raw, LayoutFullTime, offsetsFor(serverOffset))
}
