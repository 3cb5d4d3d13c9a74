// core/hits/maxhits.go
package hits

import (
	"strconv"
	"strings"
)

const (
	DefaultMaxHits = 500
	MaxHitsCeiling = 100000 // "no limit"
)

// ParseMaxHits maps a request value to a hit cap: a positive integer is used
// as is, "no limit" (or its form-encoded "no+limit") maps to the ceiling, and
// anything else, empty included, selects the default.
func ParseMaxHits(s string) int {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "no limit", "no+limit", "nolimit", "unlimited":
		return MaxHitsCeiling
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return DefaultMaxHits
	}
	return n
}
