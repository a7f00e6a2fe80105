package utils

import (
	"fmt"
	"time"
)

// Duration formats an elapsed time for log output.
// Examples:
//   - Less than 1 millisecond: "0ms"
//   - Less than 1 second: "250ms"
//   - Less than 1 minute: "5.2s"
//   - 1 minute or more: "3m5.2s"
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := d.Seconds() - float64(minutes*60)
	return fmt.Sprintf("%dm%.1fs", minutes, seconds)
}
