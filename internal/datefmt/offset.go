package datefmt

import "time"

// DefaultServerOffset is the server clock's offset east of UTC in minutes (UTC+3)
const DefaultServerOffset = 180

// Offsets holds the two minute offsets applied by Adjust. Both are expressed
// as minutes east of UTC, the same sign convention as time.Time.Zone.
type Offsets struct {
	Server int
	Local  int
}

// Clock reports the local zone's offset at a point in time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the process's current local time
var SystemClock Clock = systemClock{}

// LocalOffsetFrom returns the minutes east of UTC of the clock's current zone.
// The value follows daylight saving rules of that zone at the moment of the call.
func LocalOffsetFrom(c Clock) int {
	_, seconds := c.Now().Zone()
	return seconds / 60
}

// LocalOffset returns the environment's local offset east of UTC in minutes
func LocalOffset() int {
	return LocalOffsetFrom(SystemClock)
}

// DefaultOffsets combines DefaultServerOffset with the environment's local offset
func DefaultOffsets() Offsets {
	return Offsets{Server: DefaultServerOffset, Local: LocalOffset()}
}

// Adjust converts a server wall-clock timestamp into local wall-clock time.
// The result is expressed in UTC so that its UTC calendar fields are the
// local wall-clock fields; Render reads those fields directly.
func Adjust(t time.Time, o Offsets) time.Time {
	shift := time.Duration(o.Local-o.Server) * time.Minute
	return t.UTC().Add(shift)
}
