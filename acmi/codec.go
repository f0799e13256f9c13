package acmi

import (
	"fmt"
	"strconv"
	"time"
)

// primitive value decoders shared by the property and record decoders

// parseObjectID decodes a hexadecimal object id, any case, no prefix.
func parseObjectID(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParseInt, err)
	}
	return v, nil
}

// parseUint decodes a decimal unsigned integer.
func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParseInt, err)
	}
	return v, nil
}

// parseFloat decodes a decimal real.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParseFloat, err)
	}
	return v, nil
}

// parseTime decodes an RFC 3339 instant with offset.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrParseTime, err)
	}
	return t, nil
}
