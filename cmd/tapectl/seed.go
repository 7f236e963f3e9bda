package main

import (
	"fmt"
	"strconv"
)

// parseSeed accepts a decimal literal ("12345") or a 0x-prefixed hex
// literal ("0xDEADBEEF") and returns it as a uint32 seed.
func parseSeed(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return uint32(v), nil
}
