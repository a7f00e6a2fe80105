package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jchantrell/displayfmt/internal/datefmt"
)

// LocalOffsetAuto makes the local offset follow the environment's time zone
const LocalOffsetAuto = "auto"

// maxOffset is the largest offset magnitude accepted, in minutes
const maxOffset = 24 * 60

func validateOffset(name string, minutes int) error {
	if minutes <= -maxOffset || minutes >= maxOffset {
		return fmt.Errorf("%s %d is outside ±%d minutes", name, minutes, maxOffset)
	}
	return nil
}

// parseLocalOffset returns nil for "auto" (or empty) and the fixed offset otherwise
func parseLocalOffset(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, LocalOffsetAuto) {
		return nil, nil
	}

	minutes, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("local_offset '%s' must be '%s' or a whole number of minutes", value, LocalOffsetAuto)
	}

	if err := validateOffset("local_offset", minutes); err != nil {
		return nil, err
	}

	return &minutes, nil
}

// Offsets resolves the configured offsets. An automatic local offset is read
// from the environment at the time of the call.
func (c *Config) Offsets() (datefmt.Offsets, error) {
	local, err := parseLocalOffset(c.LocalOffset)
	if err != nil {
		return datefmt.Offsets{}, err
	}

	offsets := datefmt.Offsets{Server: c.ServerOffset}
	if local != nil {
		offsets.Local = *local
	} else {
		offsets.Local = datefmt.LocalOffset()
	}

	return offsets, nil
}
